package command

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandGetString(t *testing.T) {
	c := &Command{
		Path: "/bin/echo",
		Args: []string{"ami-0123"},
	}

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	s, err := c.GetString(context.Background(), logger)
	assert.Nil(t, err)
	assert.Equal(t, "ami-0123", s)

	require.Len(t, hook.Entries, 1)
	assert.Equal(t, "executing /bin/echo ami-0123", hook.LastEntry().Message)
}

func TestCommandGetStringError(t *testing.T) {
	c := &Command{
		Path: "/bin/bash",
		Args: []string{"-c", "echo ERROR >&2; exit 1"},
	}

	_, err := c.GetString(context.Background(), nil)
	status, ok := ExitStatus(err)
	assert.True(t, ok)
	assert.Equal(t, 1, status)

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, "ERROR\n", string(exitErr.Err.Stderr))
	assert.Equal(t, "exit status 1: ERROR", err.Error())
}

func TestCommandString(t *testing.T) {
	c := &Command{Path: "aws", Args: []string{"ec2", "describe-images"}}
	assert.Equal(t, "aws ec2 describe-images", c.String())
}

func TestHooksRun(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "event.json")

	h := &Hooks{
		Commands: []Command{
			{Path: "/bin/bash", Args: []string{"-c", "cat > " + dst}},
		},
	}
	err := h.Run(context.Background(), EventInstancesCreated, "Created instances", map[string]interface{}{
		"names": []string{"web-1"},
	})
	require.NoError(t, err)

	b, err := os.ReadFile(dst)
	require.NoError(t, err)

	var ev map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &ev))
	assert.Equal(t, "instancesCreated", ev["event"])
	assert.Equal(t, "Created instances", ev["message"])
	assert.Equal(t, map[string]interface{}{"names": []interface{}{"web-1"}}, ev["detail"])
}

func TestHooksRunStopsAtFirstFailure(t *testing.T) {
	out := &bytes.Buffer{}
	h := &Hooks{
		Commands: []Command{
			{Path: "/bin/bash", Args: []string{"-c", "exit 3"}},
			{Path: "/bin/echo", Args: []string{"second"}},
		},
		Out: out,
	}

	err := h.Run(context.Background(), EventInstancesTerminated, "Terminated", nil)
	var hookErr *HookError
	require.True(t, errors.As(err, &hookErr))
	assert.Equal(t, "/bin/bash -c exit 3", hookErr.Command)
	status, ok := ExitStatus(err)
	assert.True(t, ok)
	assert.Equal(t, 3, status)
	assert.Equal(t, `hook "/bin/bash -c exit 3" exited with status 3`, err.Error())
	assert.NotContains(t, out.String(), "second")
}

func TestHooksRunMissingCommand(t *testing.T) {
	h := &Hooks{Commands: []Command{{Path: "/nonexistent/hook"}}}

	err := h.Run(context.Background(), EventInstancesCreated, "", nil)
	_, ok := ExitStatus(err)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), `hook "/nonexistent/hook" failed: `)
}

func TestExitStatusOfOtherErrors(t *testing.T) {
	_, ok := ExitStatus(nil)
	assert.False(t, ok)
	_, ok = ExitStatus(errors.New("boom"))
	assert.False(t, ok)
}

func TestHooksRunWithoutCommands(t *testing.T) {
	h := &Hooks{}
	assert.NoError(t, h.Run(context.Background(), EventInstancesCreated, "", nil))
}
