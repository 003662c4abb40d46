package spot

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) SubmitCapacityRequest(ctx context.Context, req CapacityRequest) ([]string, error) {
	args := m.Called(req)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}

func (m *MockProvider) DescribeRequests(ctx context.Context, ids []string) (map[string]Status, error) {
	args := m.Called(ids)
	statuses, _ := args.Get(0).(map[string]Status)
	return statuses, args.Error(1)
}

func (m *MockProvider) CancelRequests(ctx context.Context, ids []string) error {
	args := m.Called(ids)
	return args.Error(0)
}

func (m *MockProvider) TerminateInstance(ctx context.Context, instanceID string) error {
	args := m.Called(instanceID)
	return args.Error(0)
}

func (m *MockProvider) TagInstance(ctx context.Context, instanceID, name string) error {
	args := m.Called(instanceID, name)
	return args.Error(0)
}
