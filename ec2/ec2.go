package ec2

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/sirupsen/logrus"
)

var (
	ErrInstanceNotFound  = errors.New("instance not found")
	ErrInstanceAmbiguous = errors.New("instance name is ambiguous")
)

// liveStates excludes terminated instances from listings by default.
var liveStates = []string{
	ec2.InstanceStateNamePending,
	ec2.InstanceStateNameRunning,
	ec2.InstanceStateNameStopping,
	ec2.InstanceStateNameStopped,
	ec2.InstanceStateNameShuttingDown,
}

// tagRetryWait is the first wait between CreateTags retries. New resources
// are not always visible to CreateTags right away.
var tagRetryWait = 1 * time.Second

const tagRetry = 4

type Client struct {
	sdk SDKClient

	Logger *logrus.Logger
	DryRun bool
}

func NewClient(sess client.ConfigProvider, logger *logrus.Logger) *Client {
	return NewClientWithSDK(ec2.New(sess), logger)
}

// NewClientWithSDK is used when the SDK client is built elsewhere.
func NewClientWithSDK(sdk SDKClient, logger *logrus.Logger) *Client {
	if logger == nil {
		logger = logrus.New()
		logger.Out = io.Discard
	}

	return &Client{
		sdk:    sdk,
		Logger: logger,
	}
}

// ListInstances returns instances matching every selector. With no states,
// terminated instances are left out.
func (c *Client) ListInstances(ctx context.Context, selectors []string, states []string) (Instances, error) {
	if len(states) == 0 {
		states = liveStates
	}

	filters := append(SelectorFilters(selectors), &ec2.Filter{
		Name:   aws.String("instance-state-name"),
		Values: aws.StringSlice(states),
	})
	params := &ec2.DescribeInstancesInput{
		Filters: filters,
	}

	instances := Instances{}
	for {
		resp, err := c.sdk.DescribeInstancesWithContext(ctx, params)
		if err != nil {
			return nil, err
		}
		for _, res := range resp.Reservations {
			for _, i := range res.Instances {
				instances = append(instances, NewInstanceFromSDK(i))
			}
		}
		if aws.StringValue(resp.NextToken) == "" {
			break
		}
		params.NextToken = resp.NextToken
	}

	instances.sort()
	return instances, nil
}

// ResolveNames maps each name (or instance ID) to exactly one live
// instance, keeping the order of names.
func (c *Client) ResolveNames(ctx context.Context, names []string) (Instances, error) {
	all, err := c.ListInstances(ctx, nil, nil)
	if err != nil {
		return nil, err
	}

	resolved := Instances{}
	for _, name := range names {
		matched := Instances{}
		for _, i := range all {
			if i.Name == name || i.InstanceID == name {
				matched = append(matched, i)
			}
		}

		switch len(matched) {
		case 0:
			return nil, fmt.Errorf("%w: %s", ErrInstanceNotFound, name)
		case 1:
			resolved = append(resolved, matched[0])
		default:
			return nil, fmt.Errorf("%w: %s matches %s", ErrInstanceAmbiguous, name, strings.Join(matched.IDs(), ", "))
		}
	}

	return resolved, nil
}

func (c *Client) StartInstances(ctx context.Context, ids []string) error {
	c.Logger.WithField("instances", ids).Debug("StartInstances")
	_, err := c.sdk.StartInstancesWithContext(ctx, &ec2.StartInstancesInput{
		DryRun:      aws.Bool(c.DryRun),
		InstanceIds: aws.StringSlice(ids),
	})
	return err
}

func (c *Client) StopInstances(ctx context.Context, ids []string) error {
	c.Logger.WithField("instances", ids).Debug("StopInstances")
	_, err := c.sdk.StopInstancesWithContext(ctx, &ec2.StopInstancesInput{
		DryRun:      aws.Bool(c.DryRun),
		InstanceIds: aws.StringSlice(ids),
	})
	return err
}

func (c *Client) TerminateInstances(ctx context.Context, ids []string) error {
	c.Logger.WithField("instances", ids).Debug("TerminateInstances")
	_, err := c.sdk.TerminateInstancesWithContext(ctx, &ec2.TerminateInstancesInput{
		DryRun:      aws.Bool(c.DryRun),
		InstanceIds: aws.StringSlice(ids),
	})
	return err
}

// TagName sets the Name tag, retrying while the new resource is not yet
// visible to the API.
func (c *Client) TagName(ctx context.Context, resourceID, name string) error {
	return c.createTags(ctx, []string{resourceID}, map[string]string{nameTagKey: name})
}

func (c *Client) createTags(ctx context.Context, ids []string, tags map[string]string) error {
	params := &ec2.CreateTagsInput{
		DryRun:    aws.Bool(c.DryRun),
		Resources: aws.StringSlice(ids),
		Tags:      sdkTags(tags),
	}
	c.Logger.Debugf("CreateTags: %s", params)

	var err error
	wait := tagRetryWait
	for i := 0; i < tagRetry; i++ {
		_, err = c.sdk.CreateTagsWithContext(ctx, params)
		if err == nil {
			return nil
		}
		if i < tagRetry-1 {
			c.Logger.WithError(err).Infof("CreateTags failed, will retry after %s", wait)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
			wait *= 2
		}
	}
	return err
}
