// Package metric reads instance metrics from CloudWatch.
package metric

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/cloudwatch"
)

// Window is how far back CPUUtilization looks.
const Window = 10 * time.Minute

type CloudWatchClient interface {
	GetMetricStatisticsWithContext(aws.Context, *cloudwatch.GetMetricStatisticsInput, ...request.Option) (*cloudwatch.GetMetricStatisticsOutput, error)
}

type CloudWatch struct {
	client CloudWatchClient
	now    func() time.Time
}

func NewCloudWatch(sess client.ConfigProvider) *CloudWatch {
	return NewCloudWatchWithClient(cloudwatch.New(sess))
}

func NewCloudWatchWithClient(c CloudWatchClient) *CloudWatch {
	return &CloudWatch{client: c, now: time.Now}
}

// CPUUtilization returns the average CPUUtilization of each instance over
// Window. Instances without datapoints are left out.
func (c *CloudWatch) CPUUtilization(ctx context.Context, instanceIDs []string) (map[string]float64, error) {
	end := c.now()
	start := end.Add(-Window)

	ret := map[string]float64{}
	for _, id := range instanceIDs {
		params := &cloudwatch.GetMetricStatisticsInput{
			MetricName: aws.String("CPUUtilization"),
			Namespace:  aws.String("AWS/EC2"),
			Period:     aws.Int64(int64(Window / time.Second)),
			StartTime:  aws.Time(start),
			EndTime:    aws.Time(end),
			Statistics: aws.StringSlice([]string{cloudwatch.StatisticAverage}),
			Dimensions: []*cloudwatch.Dimension{
				{Name: aws.String("InstanceId"), Value: aws.String(id)},
			},
		}
		resp, err := c.client.GetMetricStatisticsWithContext(ctx, params)
		if err != nil {
			return nil, err
		}

		if len(resp.Datapoints) == 0 {
			continue
		}
		sum := 0.0
		for _, p := range resp.Datapoints {
			sum += aws.Float64Value(p.Average)
		}
		ret[id] = sum / float64(len(resp.Datapoints))
	}

	return ret, nil
}
