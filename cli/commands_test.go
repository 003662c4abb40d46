package cli

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/ryotarai/machine/ec2"
	"github.com/ryotarai/machine/spot"
	"github.com/ryotarai/machine/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLs(t *testing.T) {
	env := newTestEnv(t)
	env.ec2.On("ListInstances", []string{"web-*"}, []string{"running", "stopped"}).Return(ec2.Instances{
		{InstanceID: "i-1", Name: "web-1", InstanceType: "t3.micro", State: "running", Lifecycle: "spot", PublicIP: "203.0.113.1", PrivateIP: "10.0.0.1"},
		{InstanceID: "i-2", Name: "web-2", InstanceType: "t3.micro", State: "stopped", Lifecycle: "normal"},
	}, nil)
	env.cpu.On("CPUUtilization", []string{"i-1"}).Return(map[string]float64{"i-1": 12.34}, nil)

	c := &LsCommand{Meta: env.meta}
	code := c.Run(env.args("-state", "running,stopped", "-cpu", "web-*"))
	require.Equal(t, 0, code, env.ui.ErrorWriter.String())

	lines := strings.Split(strings.TrimRight(env.ui.OutputWriter.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"NAME", "ID", "TYPE", "STATE", "LIFECYCLE", "ADDRESS", "CPU"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"web-1", "i-1", "t3.micro", "running", "spot", "203.0.113.1", "12.3%"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"web-2", "i-2", "t3.micro", "stopped", "normal", "-", "-"}, strings.Fields(lines[2]))
}

func TestLsPrivateProbe(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	port := l.Addr().(*net.TCPAddr).Port

	env := newTestEnv(t)
	env.writeConfig(t, strings.Replace(testConfigYAML, "ServicePorts: [22]", fmt.Sprintf("ServicePorts: [%d]", port), 1))
	env.ec2.On("ListInstances", mock.Anything, []string(nil)).Return(ec2.Instances{
		{InstanceID: "i-1", Name: "web-1", State: "running", PublicIP: "203.0.113.1", PrivateIP: "127.0.0.1"},
	}, nil)

	c := &LsCommand{Meta: env.meta}
	code := c.Run(env.args("-private", "-probe"))
	require.Equal(t, 0, code, env.ui.ErrorWriter.String())

	lines := strings.Split(strings.TrimRight(env.ui.OutputWriter.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"NAME", "ID", "TYPE", "STATE", "LIFECYCLE", "ADDRESS", "PORTS"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"web-1", "i-1", "-", "running", "-", "127.0.0.1", strconv.Itoa(port)}, strings.Fields(lines[1]))
}

func TestLsError(t *testing.T) {
	env := newTestEnv(t)
	env.ec2.On("ListInstances", mock.Anything, mock.Anything).Return(nil, errors.New("AuthFailure"))

	c := &LsCommand{Meta: env.meta}
	assert.Equal(t, 1, c.Run(env.args()))
	assert.Equal(t, "AuthFailure\n", env.ui.ErrorWriter.String())
}

func TestStartStop(t *testing.T) {
	env := newTestEnv(t)
	instances := ec2.Instances{{InstanceID: "i-1", Name: "web-1"}, {InstanceID: "i-2", Name: "web-2"}}
	env.ec2.On("ResolveNames", []string{"web-1", "web-2"}).Return(instances, nil)
	env.ec2.On("StartInstances", []string{"i-1", "i-2"}).Return(nil)
	env.ec2.On("StopInstances", []string{"i-1", "i-2"}).Return(nil)

	start := &InstanceCommand{Meta: env.meta, action: actionStart}
	assert.Equal(t, 0, start.Run(env.args("web-1", "web-2")))
	stop := &InstanceCommand{Meta: env.meta, action: actionStop}
	assert.Equal(t, 0, stop.Run(env.args("web-1", "web-2")))

	assert.Equal(t, "web-1\ti-1\nweb-2\ti-2\nweb-1\ti-1\nweb-2\ti-2\n", env.ui.OutputWriter.String())
}

func TestTerminateDeclined(t *testing.T) {
	env := newTestEnv(t)
	env.ui.InputReader = strings.NewReader("n\n")
	env.ec2.On("ResolveNames", []string{"web-1"}).Return(ec2.Instances{{InstanceID: "i-1", Name: "web-1"}}, nil)

	c := &InstanceCommand{Meta: env.meta, action: actionTerminate}
	assert.Equal(t, 1, c.Run(env.args("web-1")))
	assert.Contains(t, env.ui.OutputWriter.String(), "Terminate web-1 (i-1)? [y/N]")
	env.ec2.AssertNotCalled(t, "TerminateInstances", mock.Anything)
}

func TestTerminateConfirmed(t *testing.T) {
	env := newTestEnv(t)
	env.ui.InputReader = strings.NewReader("yes\n")
	env.ec2.On("ResolveNames", []string{"web-1"}).Return(ec2.Instances{{InstanceID: "i-1", Name: "web-1"}}, nil)
	env.ec2.On("TerminateInstances", []string{"i-1"}).Return(nil)

	c := &InstanceCommand{Meta: env.meta, action: actionTerminate}
	assert.Equal(t, 0, c.Run(env.args("web-1")))
}

func TestTerminateYes(t *testing.T) {
	env := newTestEnv(t)
	env.ec2.On("ResolveNames", []string{"web-1"}).Return(ec2.Instances{{InstanceID: "i-1", Name: "web-1"}}, nil)
	env.ec2.On("TerminateInstances", []string{"i-1"}).Return(nil)

	c := &InstanceCommand{Meta: env.meta, action: actionTerminate}
	assert.Equal(t, 0, c.Run(env.args("-yes", "web-1")))
	assert.Equal(t, "web-1\ti-1\n", env.ui.OutputWriter.String())
}

func TestInstanceCommandUnknownName(t *testing.T) {
	env := newTestEnv(t)
	env.ec2.On("ResolveNames", []string{"nope"}).Return(nil, ec2.ErrInstanceNotFound)

	c := &InstanceCommand{Meta: env.meta, action: actionStop}
	assert.Equal(t, 1, c.Run(env.args("nope")))
	assert.Equal(t, 1, c.Run(env.args()))
}

func TestImageCommands(t *testing.T) {
	env := newTestEnv(t)
	env.ec2.On("ResolveNames", []string{"web-1"}).Return(ec2.Instances{{InstanceID: "i-1", Name: "web-1"}}, nil)
	env.ec2.On("CreateImage", "i-1", "web-base", true).Return("ami-1", nil)
	env.ec2.On("ListImages").Return([]*ec2.Image{
		{ImageID: "ami-1", Name: "web-base", State: "pending", CreationDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
	}, nil)
	env.ec2.On("DeregisterImage", "ami-1").Return(nil)
	env.ec2.On("DeregisterImage", "ami-2").Return(errors.New("InvalidAMIID.NotFound"))

	create := &ImageCreateCommand{Meta: env.meta}
	assert.Equal(t, 0, create.Run(env.args("-no-reboot", "web-1", "web-base")))
	assert.Equal(t, 1, create.Run(env.args("web-1")))

	ls := &ImageLsCommand{Meta: env.meta}
	assert.Equal(t, 0, ls.Run(env.args()))

	rm := &ImageRmCommand{Meta: env.meta}
	assert.Equal(t, 1, rm.Run(env.args("ami-1", "ami-2")))

	out := strings.Split(strings.TrimRight(env.ui.OutputWriter.String(), "\n"), "\n")
	require.Len(t, out, 4)
	assert.Equal(t, "ami-1", out[0])
	assert.Equal(t, []string{"ID", "NAME", "STATE", "CREATED"}, strings.Fields(out[1]))
	assert.Equal(t, []string{"ami-1", "web-base", "pending", "2024-06-01T00:00:00Z"}, strings.Fields(out[2]))
	assert.Equal(t, "ami-1", out[3])
	assert.Contains(t, env.ui.ErrorWriter.String(), "ami-2: InvalidAMIID.NotFound")
}

func TestSSHConfigPrint(t *testing.T) {
	env := newTestEnv(t)
	env.ec2.On("ListInstances", mock.Anything, []string{"running"}).Return(ec2.Instances{
		{InstanceID: "i-1", Name: "web-1", PublicIP: "203.0.113.1", PrivateIP: "10.0.0.1"},
		{InstanceID: "i-2", Name: "web-2"},
		{InstanceID: "i-3", PrivateIP: "10.0.0.3"},
	}, nil)

	c := &SSHConfigCommand{Meta: env.meta}
	assert.Equal(t, 0, c.Run(env.args()))
	assert.Equal(t, "Host web-1\n  HostName 203.0.113.1\n  User ec2-user\n", env.ui.OutputWriter.String())
}

func TestSSHConfigWrite(t *testing.T) {
	env := newTestEnv(t)
	env.ec2.On("ListInstances", mock.Anything, []string{"running"}).Return(ec2.Instances{
		{InstanceID: "i-1", Name: "web-1", PublicIP: "203.0.113.1", PrivateIP: "10.0.0.1"},
	}, nil)

	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte("Host bastion\n"), 0600))

	c := &SSHConfigCommand{Meta: env.meta}
	assert.Equal(t, 0, c.Run(env.args("-o", path, "-user", "admin", "-private")))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Host bastion\n\n# BEGIN machine\nHost web-1\n  HostName 10.0.0.1\n  User admin\n\n# END machine\n", string(b))
	assert.Contains(t, env.ui.OutputWriter.String(), "Wrote 1 hosts to "+path)
}

func TestReap(t *testing.T) {
	env := newTestEnv(t)
	env.journal.batches["b1"] = &storage.Batch{ID: "b1", RequestIDs: []string{"sir-1", "sir-2"}, Names: []string{"a", "b"}, CreatedAt: time.Unix(0, 0).UTC()}
	env.provider.On("CancelRequests", []string{"sir-1", "sir-2"}).Return(nil)
	env.provider.On("DescribeRequests", []string{"sir-1", "sir-2"}).Return(map[string]spot.Status{
		"sir-1": {State: spot.Fulfilled, InstanceID: "i-1"},
		"sir-2": {State: spot.Failed},
	}, nil)
	env.provider.On("TerminateInstance", "i-1").Return(nil)

	c := &ReapCommand{Meta: env.meta}
	assert.Equal(t, 0, c.Run(env.args("-yes")))
	assert.Empty(t, env.journal.batches)
	assert.Contains(t, env.ui.OutputWriter.String(), "b1\t1970-01-01T00:00:00Z\ta,b\tsir-1,sir-2")
	assert.Contains(t, env.ui.OutputWriter.String(), "Reaped b1")
}

func TestReapNothing(t *testing.T) {
	env := newTestEnv(t)

	c := &ReapCommand{Meta: env.meta}
	assert.Equal(t, 0, c.Run(env.args()))
	assert.Contains(t, env.ui.OutputWriter.String(), "No journaled spot requests")
}

func TestReapDeclined(t *testing.T) {
	env := newTestEnv(t)
	env.ui.InputReader = strings.NewReader("\n")
	env.journal.batches["b1"] = &storage.Batch{ID: "b1", RequestIDs: []string{"sir-1"}}

	c := &ReapCommand{Meta: env.meta}
	assert.Equal(t, 1, c.Run(env.args()))
	assert.Len(t, env.journal.batches, 1)
}

func TestConfigCommand(t *testing.T) {
	env := newTestEnv(t)

	c := &ConfigCommand{Meta: env.meta}
	assert.Equal(t, 0, c.Run(env.args("-profile", "big")))

	out := env.ui.OutputWriter.String()
	assert.Contains(t, out, "InstanceType: m5.xlarge")
	assert.Contains(t, out, "AMI: ami-default")
	assert.Contains(t, out, "SpotPrice: \"0.1\"")

	assert.Equal(t, 1, c.Run(env.args("-profile", "nope")))
}

func TestConfigCommandRegionFlag(t *testing.T) {
	env := newTestEnv(t)

	c := &ConfigCommand{Meta: env.meta}
	assert.Equal(t, 0, c.Run(env.args("-region", "eu-west-1", "-log-level", "debug")))
	assert.Contains(t, env.ui.OutputWriter.String(), "Region: eu-west-1")
	assert.Contains(t, env.ui.OutputWriter.String(), "LogLevel: debug")
}

func TestConfigCommandInvalidFile(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, os.WriteFile(env.configPath, []byte("Unknown: 1\n"), 0600))

	c := &ConfigCommand{Meta: env.meta}
	assert.Equal(t, 1, c.Run(env.args()))
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t)

	c := &VersionCommand{Meta: env.meta}
	assert.Equal(t, 0, c.Run(nil))
	assert.Equal(t, "machine v"+Version+" ("+GitCommit+")\n", env.ui.OutputWriter.String())
}

func TestCommandsHaveHelp(t *testing.T) {
	for name, factory := range Commands(newTestEnv(t).meta) {
		c, err := factory()
		require.NoError(t, err)
		assert.NotEmpty(t, c.Synopsis(), name)
		assert.NotEmpty(t, c.Help(), name)
	}
}

func TestSSHConfigHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	env := newTestEnv(t)
	env.writeConfig(t, strings.Replace(testConfigYAML, "  User: ec2-user\n", "  User: ec2-user\n  ConfigPath: ~/.ssh/config\n", 1))
	env.ec2.On("ListInstances", mock.Anything, []string{"running"}).Return(ec2.Instances{
		{InstanceID: "i-1", Name: "web-1", PublicIP: "203.0.113.1"},
	}, nil)

	c := &SSHConfigCommand{Meta: env.meta}
	require.Equal(t, 0, c.Run(env.args()), env.ui.ErrorWriter.String())

	b, err := os.ReadFile(filepath.Join(home, ".ssh", "config"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "Host web-1\n  HostName 203.0.113.1\n")
}
