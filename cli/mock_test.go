package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/cli"
	"github.com/ryotarai/machine/config"
	"github.com/ryotarai/machine/ec2"
	"github.com/ryotarai/machine/spot"
	"github.com/ryotarai/machine/storage"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockEC2 struct {
	mock.Mock
}

func (m *MockEC2) ListInstances(ctx context.Context, selectors []string, states []string) (ec2.Instances, error) {
	args := m.Called(selectors, states)
	is, _ := args.Get(0).(ec2.Instances)
	return is, args.Error(1)
}

func (m *MockEC2) ResolveNames(ctx context.Context, names []string) (ec2.Instances, error) {
	args := m.Called(names)
	is, _ := args.Get(0).(ec2.Instances)
	return is, args.Error(1)
}

func (m *MockEC2) RunInstances(ctx context.Context, spec *ec2.LaunchSpec, names []string) ([]string, error) {
	args := m.Called(spec, names)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}

func (m *MockEC2) StartInstances(ctx context.Context, ids []string) error {
	return m.Called(ids).Error(0)
}

func (m *MockEC2) StopInstances(ctx context.Context, ids []string) error {
	return m.Called(ids).Error(0)
}

func (m *MockEC2) TerminateInstances(ctx context.Context, ids []string) error {
	return m.Called(ids).Error(0)
}

func (m *MockEC2) CreateImage(ctx context.Context, instanceID, name string, noReboot bool) (string, error) {
	args := m.Called(instanceID, name, noReboot)
	return args.String(0), args.Error(1)
}

func (m *MockEC2) ListImages(ctx context.Context) ([]*ec2.Image, error) {
	args := m.Called()
	images, _ := args.Get(0).([]*ec2.Image)
	return images, args.Error(1)
}

func (m *MockEC2) DeregisterImage(ctx context.Context, imageID string) error {
	return m.Called(imageID).Error(0)
}

type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) SubmitCapacityRequest(ctx context.Context, req spot.CapacityRequest) ([]string, error) {
	args := m.Called(req)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}

func (m *MockProvider) DescribeRequests(ctx context.Context, ids []string) (map[string]spot.Status, error) {
	args := m.Called(ids)
	statuses, _ := args.Get(0).(map[string]spot.Status)
	return statuses, args.Error(1)
}

func (m *MockProvider) CancelRequests(ctx context.Context, ids []string) error {
	return m.Called(ids).Error(0)
}

func (m *MockProvider) TerminateInstance(ctx context.Context, instanceID string) error {
	return m.Called(instanceID).Error(0)
}

func (m *MockProvider) TagInstance(ctx context.Context, instanceID, name string) error {
	return m.Called(instanceID, name).Error(0)
}

type MockCPU struct {
	mock.Mock
}

func (m *MockCPU) CPUUtilization(ctx context.Context, ids []string) (map[string]float64, error) {
	args := m.Called(ids)
	cpu, _ := args.Get(0).(map[string]float64)
	return cpu, args.Error(1)
}

type memJournal struct {
	batches map[string]*storage.Batch
}

func newMemJournal(batches ...*storage.Batch) *memJournal {
	j := &memJournal{batches: map[string]*storage.Batch{}}
	for _, b := range batches {
		j.batches[b.ID] = b
	}
	return j
}

func (j *memJournal) Add(b *storage.Batch) error {
	j.batches[b.ID] = b
	return nil
}

func (j *memJournal) Remove(id string) error {
	delete(j.batches, id)
	return nil
}

func (j *memJournal) List() ([]*storage.Batch, error) {
	ret := []*storage.Batch{}
	for _, b := range j.batches {
		ret = append(ret, b)
	}
	return ret, nil
}

const testConfigYAML = `
ServicePorts: [22]
SSH:
  User: ec2-user
Defaults:
  InstanceType: t3.micro
  AMI: ami-default
  Tags:
    team: infra
Profiles:
  big:
    InstanceType: m5.xlarge
    SpotPrice: "0.1"
`

type testEnv struct {
	meta       *Meta
	ui         *cli.MockUi
	configPath string
	services   *Services
	ec2        *MockEC2
	provider   *MockProvider
	cpu        *MockCPU
	journal    *memJournal
	dryRun     bool
}

func newTestEnv(t *testing.T) *testEnv {
	path := filepath.Join(t.TempDir(), "machine.yml")

	logger := logrus.New()
	logger.Out = io.Discard

	env := &testEnv{
		ui:         cli.NewMockUi(),
		configPath: path,
		ec2:        &MockEC2{},
		provider:   &MockProvider{},
		cpu:        &MockCPU{},
		journal:    newMemJournal(),
	}
	env.services = &Services{
		EC2:     env.ec2,
		Spot:    env.provider,
		Metrics: env.cpu,
		Journal: env.journal,
	}
	env.meta = &Meta{
		Ui:     env.ui,
		Status: io.Discard,
		Logger: logger,
		NewServices: func(cfg *config.Config, logger *logrus.Logger, dryRun bool) (*Services, error) {
			env.dryRun = dryRun
			return env.services, nil
		},
		Context: context.Background(),
	}

	env.writeConfig(t, testConfigYAML)

	t.Cleanup(func() {
		env.ec2.AssertExpectations(t)
		env.provider.AssertExpectations(t)
		env.cpu.AssertExpectations(t)
	})
	return env
}

// args prepends -config to args.
func (e *testEnv) args(args ...string) []string {
	return append([]string{"-config", e.configPath}, args...)
}

func (e *testEnv) writeConfig(t *testing.T, yml string) {
	require.NoError(t, os.WriteFile(e.configPath, []byte(yml), 0600))
}
