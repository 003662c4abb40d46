package ec2

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/google/uuid"
	"github.com/ryotarai/machine/spot"
)

const errCodeSpotRequestNotFound = "InvalidSpotInstanceRequestID.NotFound"

// SpotProvider implements spot.Provider with one-time spot instance
// requests. The tags of the last submitted LaunchSpec are applied to every
// instance along with its Name.
type SpotProvider struct {
	client *Client

	mu   sync.Mutex
	tags map[string]string
}

func NewSpotProvider(client *Client) *SpotProvider {
	return &SpotProvider{client: client}
}

func (p *SpotProvider) SubmitCapacityRequest(ctx context.Context, req spot.CapacityRequest) ([]string, error) {
	spec, ok := req.Spec.(*LaunchSpec)
	if !ok {
		return nil, fmt.Errorf("unsupported spec type %T", req.Spec)
	}

	input := &ec2.RequestSpotInstancesInput{
		DryRun:              aws.Bool(p.client.DryRun),
		ClientToken:         aws.String(uuid.New().String()),
		InstanceCount:       aws.Int64(int64(req.DesiredCount)),
		SpotPrice:           optionalString(req.MaxPrice),
		Type:                aws.String(ec2.SpotInstanceTypeOneTime),
		LaunchSpecification: spec.spotLaunchSpecification(),
	}
	p.client.Logger.Infof("RequestSpotInstances: %s", input)

	p.mu.Lock()
	p.tags = spec.Tags
	p.mu.Unlock()

	resp, err := p.client.sdk.RequestSpotInstancesWithContext(ctx, input)
	if err != nil {
		return nil, err
	}

	ids := []string{}
	for _, r := range resp.SpotInstanceRequests {
		ids = append(ids, aws.StringValue(r.SpotInstanceRequestId))
	}
	return ids, nil
}

func (p *SpotProvider) DescribeRequests(ctx context.Context, ids []string) (map[string]spot.Status, error) {
	resp, err := p.client.sdk.DescribeSpotInstanceRequestsWithContext(ctx, &ec2.DescribeSpotInstanceRequestsInput{
		SpotInstanceRequestIds: aws.StringSlice(ids),
	})
	if err != nil {
		// New requests are not visible to Describe right away.
		if aerr, ok := err.(awserr.Error); ok && aerr.Code() == errCodeSpotRequestNotFound {
			statuses := map[string]spot.Status{}
			for _, id := range ids {
				statuses[id] = spot.Status{State: spot.Pending}
			}
			return statuses, nil
		}
		return nil, err
	}

	statuses := map[string]spot.Status{}
	for _, r := range resp.SpotInstanceRequests {
		statuses[aws.StringValue(r.SpotInstanceRequestId)] = spot.Status{
			State:      spotState(aws.StringValue(r.State)),
			InstanceID: aws.StringValue(r.InstanceId),
		}
	}
	return statuses, nil
}

func spotState(s string) spot.State {
	switch s {
	case ec2.SpotInstanceStateOpen:
		return spot.Pending
	case ec2.SpotInstanceStateActive:
		return spot.Fulfilled
	default:
		return spot.Failed
	}
}

func (p *SpotProvider) CancelRequests(ctx context.Context, ids []string) error {
	input := &ec2.CancelSpotInstanceRequestsInput{
		DryRun:                 aws.Bool(p.client.DryRun),
		SpotInstanceRequestIds: aws.StringSlice(ids),
	}
	p.client.Logger.Debugf("CancelSpotInstanceRequests: %s", input)
	_, err := p.client.sdk.CancelSpotInstanceRequestsWithContext(ctx, input)
	return err
}

func (p *SpotProvider) TerminateInstance(ctx context.Context, instanceID string) error {
	return p.client.TerminateInstances(ctx, []string{instanceID})
}

func (p *SpotProvider) TagInstance(ctx context.Context, instanceID, name string) error {
	tags := map[string]string{}
	p.mu.Lock()
	for k, v := range p.tags {
		tags[k] = v
	}
	p.mu.Unlock()
	tags[nameTagKey] = name
	return p.client.createTags(ctx, []string{instanceID}, tags)
}
