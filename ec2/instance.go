package ec2

import (
	"sort"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
)

const nameTagKey = "Name"

type Instance struct {
	InstanceID       string
	Name             string
	InstanceType     string
	State            string
	Lifecycle        string
	AvailabilityZone string
	ImageID          string
	PublicIP         string
	PrivateIP        string
	PublicDNSName    string
	LaunchTime       time.Time
	Tags             map[string]string
}

type Instances []*Instance

func NewInstanceFromSDK(i *ec2.Instance) *Instance {
	tags := map[string]string{}
	for _, t := range i.Tags {
		tags[aws.StringValue(t.Key)] = aws.StringValue(t.Value)
	}

	lifecycle := aws.StringValue(i.InstanceLifecycle)
	if lifecycle == "" {
		lifecycle = "normal"
	}

	instance := &Instance{
		InstanceID:    aws.StringValue(i.InstanceId),
		Name:          tags[nameTagKey],
		InstanceType:  aws.StringValue(i.InstanceType),
		Lifecycle:     lifecycle,
		ImageID:       aws.StringValue(i.ImageId),
		PublicIP:      aws.StringValue(i.PublicIpAddress),
		PrivateIP:     aws.StringValue(i.PrivateIpAddress),
		PublicDNSName: aws.StringValue(i.PublicDnsName),
		LaunchTime:    aws.TimeValue(i.LaunchTime),
		Tags:          tags,
	}
	if i.State != nil {
		instance.State = aws.StringValue(i.State.Name)
	}
	if i.Placement != nil {
		instance.AvailabilityZone = aws.StringValue(i.Placement.AvailabilityZone)
	}

	return instance
}

// Address returns the address used to reach the instance, or "" if it has
// none.
func (i *Instance) Address(private bool) string {
	if private || i.PublicIP == "" {
		return i.PrivateIP
	}
	return i.PublicIP
}

func (is Instances) Names() map[string]bool {
	names := map[string]bool{}
	for _, i := range is {
		if i.Name != "" {
			names[i.Name] = true
		}
	}
	return names
}

func (is Instances) IDs() []string {
	ids := []string{}
	for _, i := range is {
		ids = append(ids, i.InstanceID)
	}
	return ids
}

func (is Instances) sort() {
	sort.SliceStable(is, func(a, b int) bool {
		if is[a].Name != is[b].Name {
			return is[a].Name < is[b].Name
		}
		return is[a].InstanceID < is[b].InstanceID
	})
}
