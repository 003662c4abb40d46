package config

import (
	"github.com/ryotarai/machine/command"
)

// LaunchConfiguration describes how instances are launched. Defaults and
// every profile share this shape; a profile only sets what it overrides.
type LaunchConfiguration struct {
	InstanceType           string               `yaml:"InstanceType"`
	AMI                    string               `yaml:"AMI"`
	AMICommand             *command.Command     `yaml:"AMICommand"`
	KeyName                string               `yaml:"KeyName"`
	SecurityGroupIDs       []string             `yaml:"SecurityGroupIDs"`
	SubnetID               string               `yaml:"SubnetID"`
	IAMInstanceProfileName string               `yaml:"IAMInstanceProfileName"`
	UserData               string               `yaml:"UserData"`
	SpotPrice              string               `yaml:"SpotPrice" validate:"omitempty,numeric"`
	BlockDeviceMappings    []BlockDeviceMapping `yaml:"BlockDeviceMappings" validate:"dive"`
	Tags                   map[string]string    `yaml:"Tags"`
}

type BlockDeviceMapping struct {
	DeviceName  string          `yaml:"DeviceName" validate:"required"`
	EBS         *EBSBlockDevice `yaml:"EBS"`
	NoDevice    string          `yaml:"NoDevice"`
	VirtualName string          `yaml:"VirtualName"`
}

type EBSBlockDevice struct {
	DeleteOnTermination bool   `yaml:"DeleteOnTermination"`
	Encrypted           bool   `yaml:"Encrypted"`
	IOPS                int64  `yaml:"IOPS"`
	Throughput          int64  `yaml:"Throughput"`
	SnapshotID          string `yaml:"SnapshotID"`
	VolumeSize          int64  `yaml:"VolumeSize"`
	VolumeType          string `yaml:"VolumeType"`
}

func (lc LaunchConfiguration) clone() LaunchConfiguration {
	c := lc
	if lc.AMICommand != nil {
		cmd := *lc.AMICommand
		cmd.Args = append([]string(nil), lc.AMICommand.Args...)
		c.AMICommand = &cmd
	}
	c.SecurityGroupIDs = append([]string(nil), lc.SecurityGroupIDs...)
	c.BlockDeviceMappings = append([]BlockDeviceMapping(nil), lc.BlockDeviceMappings...)
	if lc.Tags != nil {
		c.Tags = map[string]string{}
		for k, v := range lc.Tags {
			c.Tags[k] = v
		}
	}
	return c
}
