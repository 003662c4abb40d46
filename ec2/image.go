package ec2

import (
	"context"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
)

type Image struct {
	ImageID      string
	Name         string
	State        string
	CreationDate time.Time
}

func NewImageFromSDK(i *ec2.Image) *Image {
	img := &Image{
		ImageID: aws.StringValue(i.ImageId),
		Name:    aws.StringValue(i.Name),
		State:   aws.StringValue(i.State),
	}
	if t, err := time.Parse(time.RFC3339, aws.StringValue(i.CreationDate)); err == nil {
		img.CreationDate = t
	}
	return img
}

// CreateImage creates an AMI from the instance and returns its ID.
func (c *Client) CreateImage(ctx context.Context, instanceID, name string, noReboot bool) (string, error) {
	input := &ec2.CreateImageInput{
		DryRun:     aws.Bool(c.DryRun),
		InstanceId: aws.String(instanceID),
		Name:       aws.String(name),
		NoReboot:   aws.Bool(noReboot),
	}
	c.Logger.Debugf("CreateImage: %s", input)

	resp, err := c.sdk.CreateImageWithContext(ctx, input)
	if err != nil {
		return "", err
	}
	return aws.StringValue(resp.ImageId), nil
}

// ListImages returns images owned by the caller, newest first.
func (c *Client) ListImages(ctx context.Context) ([]*Image, error) {
	resp, err := c.sdk.DescribeImagesWithContext(ctx, &ec2.DescribeImagesInput{
		Owners: aws.StringSlice([]string{"self"}),
	})
	if err != nil {
		return nil, err
	}

	images := []*Image{}
	for _, i := range resp.Images {
		images = append(images, NewImageFromSDK(i))
	}
	sort.SliceStable(images, func(a, b int) bool {
		return images[a].CreationDate.After(images[b].CreationDate)
	})
	return images, nil
}

func (c *Client) DeregisterImage(ctx context.Context, imageID string) error {
	c.Logger.WithField("image", imageID).Debug("DeregisterImage")
	_, err := c.sdk.DeregisterImageWithContext(ctx, &ec2.DeregisterImageInput{
		DryRun:  aws.Bool(c.DryRun),
		ImageId: aws.String(imageID),
	})
	return err
}
