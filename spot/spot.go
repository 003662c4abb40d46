// Package spot drives a batch of spot capacity requests from submission to a
// terminal outcome, cleaning up after itself when the batch is abandoned.
package spot

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// State is the fulfillment state of a single capacity request.
type State int

const (
	Pending State = iota
	Fulfilled
	Failed
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Fulfilled:
		return "fulfilled"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Status is what the provider reports for one request. InstanceID is set
// once the request has provisioned an instance, even if the request was
// cancelled afterwards.
type Status struct {
	State      State
	InstanceID string
}

// CapacityRequest asks for DesiredCount instances of Spec at no more than
// MaxPrice per instance hour. Spec is opaque to this package.
type CapacityRequest struct {
	DesiredCount int
	Spec         interface{}
	MaxPrice     string
}

// Provider is the compute API the controller talks to.
type Provider interface {
	SubmitCapacityRequest(ctx context.Context, req CapacityRequest) ([]string, error)
	DescribeRequests(ctx context.Context, ids []string) (map[string]Status, error)
	CancelRequests(ctx context.Context, ids []string) error
	TerminateInstance(ctx context.Context, instanceID string) error
	TagInstance(ctx context.Context, instanceID, name string) error
}

type Assignment struct {
	Name       string
	RequestID  string
	InstanceID string
	// TagErr is set when the Name label could not be applied.
	TagErr error
}

// Outcome is the terminal result of Fulfill. Assignments is empty when
// Aborted is true.
type Outcome struct {
	Assignments []Assignment
	RequestIDs  []string
	Aborted     bool
}

var ErrInvalidRequest = errors.New("invalid capacity request")

// SubmissionError is returned when the provider rejects the batch. Its
// message is the provider's own error text.
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string { return e.Err.Error() }
func (e *SubmissionError) Unwrap() error { return e.Err }

// ProviderTransientError is returned when status queries kept failing and
// the batch was abandoned.
type ProviderTransientError struct {
	Err error
}

func (e *ProviderTransientError) Error() string {
	return fmt.Sprintf("describing spot requests failed %d times in a row: %v", MaxConsecutivePollErrors+1, e.Err)
}

func (e *ProviderTransientError) Unwrap() error { return e.Err }

// PartialFailureError is returned when at least one request of the batch
// failed. The whole batch is cleaned up in that case.
type PartialFailureError struct {
	Failed []string
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("spot request failed: %s", strings.Join(e.Failed, ", "))
}
