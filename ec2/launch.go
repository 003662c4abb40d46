package ec2

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/ryotarai/machine/config"
)

// LaunchSpec is everything needed to launch an instance, on-demand or spot.
type LaunchSpec struct {
	ImageID                string
	InstanceType           string
	KeyName                string
	SubnetID               string
	SecurityGroupIDs       []string
	IAMInstanceProfileName string
	UserData               string
	BlockDeviceMappings    []*ec2.BlockDeviceMapping
	Tags                   map[string]string
}

func NewLaunchSpec(lc *config.LaunchConfiguration, imageID string) *LaunchSpec {
	return &LaunchSpec{
		ImageID:                imageID,
		InstanceType:           lc.InstanceType,
		KeyName:                lc.KeyName,
		SubnetID:               lc.SubnetID,
		SecurityGroupIDs:       lc.SecurityGroupIDs,
		IAMInstanceProfileName: lc.IAMInstanceProfileName,
		UserData:               lc.UserData,
		BlockDeviceMappings:    sdkBlockDeviceMappings(lc.BlockDeviceMappings),
		Tags:                   lc.Tags,
	}
}

func (s *LaunchSpec) encodedUserData() *string {
	if s.UserData == "" {
		return nil
	}
	return aws.String(base64.StdEncoding.EncodeToString([]byte(s.UserData)))
}

func (s *LaunchSpec) iamInstanceProfile() *ec2.IamInstanceProfileSpecification {
	if s.IAMInstanceProfileName == "" {
		return nil
	}
	return &ec2.IamInstanceProfileSpecification{
		Name: aws.String(s.IAMInstanceProfileName),
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return aws.String(s)
}

func (s *LaunchSpec) runInstancesInput(count int) *ec2.RunInstancesInput {
	input := &ec2.RunInstancesInput{
		ImageId:             aws.String(s.ImageID),
		InstanceType:        aws.String(s.InstanceType),
		KeyName:             optionalString(s.KeyName),
		SubnetId:            optionalString(s.SubnetID),
		UserData:            s.encodedUserData(),
		IamInstanceProfile:  s.iamInstanceProfile(),
		BlockDeviceMappings: s.BlockDeviceMappings,
		MinCount:            aws.Int64(int64(count)),
		MaxCount:            aws.Int64(int64(count)),
	}
	if len(s.SecurityGroupIDs) > 0 {
		input.SecurityGroupIds = aws.StringSlice(s.SecurityGroupIDs)
	}
	if len(s.Tags) > 0 {
		input.TagSpecifications = []*ec2.TagSpecification{
			{ResourceType: aws.String(ec2.ResourceTypeInstance), Tags: sdkTags(s.Tags)},
		}
	}
	return input
}

func (s *LaunchSpec) spotLaunchSpecification() *ec2.RequestSpotLaunchSpecification {
	ls := &ec2.RequestSpotLaunchSpecification{
		ImageId:             aws.String(s.ImageID),
		InstanceType:        aws.String(s.InstanceType),
		KeyName:             optionalString(s.KeyName),
		SubnetId:            optionalString(s.SubnetID),
		UserData:            s.encodedUserData(),
		IamInstanceProfile:  s.iamInstanceProfile(),
		BlockDeviceMappings: s.BlockDeviceMappings,
	}
	if len(s.SecurityGroupIDs) > 0 {
		ls.SecurityGroupIds = aws.StringSlice(s.SecurityGroupIDs)
	}
	return ls
}

// RunInstances launches one on-demand instance per name and tags them in
// order. Instances launched before a tagging failure are returned with the
// error.
func (c *Client) RunInstances(ctx context.Context, spec *LaunchSpec, names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, errors.New("no instance names given")
	}

	input := spec.runInstancesInput(len(names))
	input.DryRun = aws.Bool(c.DryRun)
	c.Logger.WithField("count", len(names)).Infof("RunInstances: %s", input)

	res, err := c.sdk.RunInstancesWithContext(ctx, input)
	if err != nil {
		return nil, err
	}
	if len(res.Instances) != len(names) {
		ids := []string{}
		for _, i := range res.Instances {
			ids = append(ids, aws.StringValue(i.InstanceId))
		}
		return ids, fmt.Errorf("requested %d instances but %d were launched", len(names), len(res.Instances))
	}

	ids := []string{}
	for idx, i := range res.Instances {
		id := aws.StringValue(i.InstanceId)
		ids = append(ids, id)
		if err := c.TagName(ctx, id, names[idx]); err != nil {
			return ids, fmt.Errorf("tagging %s as %s: %w", id, names[idx], err)
		}
	}
	return ids, nil
}

func sdkBlockDeviceMappings(ms []config.BlockDeviceMapping) []*ec2.BlockDeviceMapping {
	if len(ms) == 0 {
		return nil
	}

	ret := []*ec2.BlockDeviceMapping{}
	for _, m := range ms {
		ret = append(ret, &ec2.BlockDeviceMapping{
			DeviceName:  aws.String(m.DeviceName),
			NoDevice:    optionalString(m.NoDevice),
			VirtualName: optionalString(m.VirtualName),
			Ebs:         sdkEBS(m.EBS),
		})
	}
	return ret
}

func sdkEBS(e *config.EBSBlockDevice) *ec2.EbsBlockDevice {
	if e == nil {
		return nil
	}

	ebs := &ec2.EbsBlockDevice{
		DeleteOnTermination: aws.Bool(e.DeleteOnTermination),
		Encrypted:           aws.Bool(e.Encrypted),
		SnapshotId:          optionalString(e.SnapshotID),
		VolumeType:          optionalString(e.VolumeType),
	}
	if e.IOPS > 0 {
		ebs.Iops = aws.Int64(e.IOPS)
	}
	if e.Throughput > 0 {
		ebs.Throughput = aws.Int64(e.Throughput)
	}
	if e.VolumeSize > 0 {
		ebs.VolumeSize = aws.Int64(e.VolumeSize)
	}
	return ebs
}
