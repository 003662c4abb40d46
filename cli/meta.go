package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/mitchellh/cli"
	"github.com/ryotarai/machine/config"
	"github.com/ryotarai/machine/ec2"
	"github.com/ryotarai/machine/metric"
	"github.com/ryotarai/machine/spot"
	"github.com/ryotarai/machine/storage"
	"github.com/sirupsen/logrus"
)

// EC2 is what commands need from ec2.Client.
type EC2 interface {
	ListInstances(ctx context.Context, selectors []string, states []string) (ec2.Instances, error)
	ResolveNames(ctx context.Context, names []string) (ec2.Instances, error)
	RunInstances(ctx context.Context, spec *ec2.LaunchSpec, names []string) ([]string, error)
	StartInstances(ctx context.Context, ids []string) error
	StopInstances(ctx context.Context, ids []string) error
	TerminateInstances(ctx context.Context, ids []string) error
	CreateImage(ctx context.Context, instanceID, name string, noReboot bool) (string, error)
	ListImages(ctx context.Context) ([]*ec2.Image, error)
	DeregisterImage(ctx context.Context, imageID string) error
}

type CPUReader interface {
	CPUUtilization(ctx context.Context, instanceIDs []string) (map[string]float64, error)
}

// Services are the provider handles a command works with. They are built
// once per command invocation.
type Services struct {
	EC2     EC2
	Spot    spot.Provider
	Metrics CPUReader
	Journal storage.Journal
}

type ServicesFactory func(cfg *config.Config, logger *logrus.Logger, dryRun bool) (*Services, error)

// Meta is shared by every command.
type Meta struct {
	Ui cli.Ui
	// Status receives transient progress output.
	Status io.Writer
	Logger *logrus.Logger

	NewServices ServicesFactory
	// Context, when set, replaces the interrupt-aware context.
	Context context.Context

	configPath string
	logLevel   string
	region     string
}

func NewMeta(ui cli.Ui) *Meta {
	logger := logrus.New()
	logger.Out = os.Stderr

	return &Meta{
		Ui:          ui,
		Status:      os.Stderr,
		Logger:      logger,
		NewServices: NewAWSServices,
	}
}

// FlagSet returns a flag set carrying the global flags.
func (m *Meta) FlagSet(name string) *flag.FlagSet {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.StringVar(&m.configPath, "config", "", "config file (default $MACHINE_CONFIG or ~/.machine.yml)")
	flags.StringVar(&m.logLevel, "log-level", "", "log level (debug, info, warn or error)")
	flags.StringVar(&m.region, "region", "", "AWS region")
	return flags
}

// LoadConfig reads the config file and applies the global flags.
func (m *Meta) LoadConfig() (*config.Config, error) {
	cfg, err := config.Load(m.configPath)
	if err != nil {
		return nil, err
	}

	if m.region != "" {
		cfg.Region = m.region
	}
	if m.logLevel != "" {
		cfg.LogLevel = m.logLevel
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	m.Logger.SetLevel(level)
	m.Logger.Debugf("loaded config: %+v", cfg)

	return cfg, nil
}

// Setup loads the config and builds the services.
func (m *Meta) Setup(dryRun bool) (*config.Config, *Services, error) {
	cfg, err := m.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	s, err := m.NewServices(cfg, m.Logger, dryRun)
	if err != nil {
		return nil, nil, err
	}
	return cfg, s, nil
}

// InterruptContext is cancelled on SIGINT or SIGTERM.
func (m *Meta) InterruptContext() (context.Context, context.CancelFunc) {
	if m.Context != nil {
		return context.WithCancel(m.Context)
	}
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func (m *Meta) fail(err error) int {
	m.Ui.Error(err.Error())
	return 1
}

// NewAWSServices builds services on a shared AWS session.
func NewAWSServices(cfg *config.Config, logger *logrus.Logger, dryRun bool) (*Services, error) {
	awsConfig := aws.NewConfig()
	if cfg.Region != "" {
		awsConfig = awsConfig.WithRegion(cfg.Region)
	}
	sess, err := session.NewSessionWithOptions(session.Options{
		Config:            *awsConfig,
		SharedConfigState: session.SharedConfigEnable,
	})
	if err != nil {
		return nil, err
	}

	client := ec2.NewClient(sess, logger)
	client.DryRun = dryRun

	var journal storage.Journal = storage.NopJournal{}
	if cfg.RedisURL != "" {
		journal = storage.NewRedisJournal(cfg.RedisURL, cfg.RedisKeyPrefix)
	}

	return &Services{
		EC2:     client,
		Spot:    ec2.NewSpotProvider(client),
		Metrics: metric.NewCloudWatch(sess),
		Journal: journal,
	}, nil
}

func usage(synopsis string, flags *flag.FlagSet) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "%s\n\nOptions:\n\n", synopsis)
	flags.SetOutput(b)
	flags.PrintDefaults()
	flags.SetOutput(io.Discard)
	return b.String()
}
