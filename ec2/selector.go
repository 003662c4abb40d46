package ec2

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
)

// SelectorFilters turns command line selectors into DescribeInstances
// filters. A selector is an instance ID ("i-..."), a "key=value" tag, or a
// Name tag which may contain "*" wildcards. IDs and names are ORed within
// their kind; every tag selector is its own filter.
func SelectorFilters(selectors []string) []*ec2.Filter {
	ids := []string{}
	names := []string{}
	filters := []*ec2.Filter{}

	for _, s := range selectors {
		switch {
		case strings.HasPrefix(s, "i-"):
			ids = append(ids, s)
		case strings.Contains(s, "="):
			kv := strings.SplitN(s, "=", 2)
			filters = append(filters, &ec2.Filter{
				Name:   aws.String(fmt.Sprintf("tag:%s", kv[0])),
				Values: aws.StringSlice([]string{kv[1]}),
			})
		default:
			names = append(names, s)
		}
	}

	if len(ids) > 0 {
		filters = append(filters, &ec2.Filter{
			Name:   aws.String("instance-id"),
			Values: aws.StringSlice(ids),
		})
	}
	if len(names) > 0 {
		filters = append(filters, &ec2.Filter{
			Name:   aws.String("tag:" + nameTagKey),
			Values: aws.StringSlice(names),
		})
	}

	return filters
}

func sdkTags(tags map[string]string) []*ec2.Tag {
	keys := []string{}
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	ret := []*ec2.Tag{}
	for _, k := range keys {
		ret = append(ret, &ec2.Tag{
			Key:   aws.String(k),
			Value: aws.String(tags[k]),
		})
	}
	return ret
}
