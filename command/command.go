package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

type Command struct {
	Path string   `yaml:"Path" validate:"required"`
	Args []string `yaml:"Args"`
}

func (c *Command) String() string {
	return strings.Join(append([]string{c.Path}, c.Args...), " ")
}

// GetString runs the command and returns its stdout without the trailing
// newline. A failing command's stderr is part of the error.
func (c *Command) GetString(ctx context.Context, logger logrus.FieldLogger) (string, error) {
	if logger != nil {
		logger.Debugf("executing %s", c)
	}

	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	b, err := cmd.Output()
	if err != nil {
		return "", wrapError(err)
	}

	s := string(b)
	return strings.TrimRight(s, "\n"), nil
}

// RunWithStdin feeds input to the command. Its output and stderr go to out.
func (c *Command) RunWithStdin(ctx context.Context, input string, out io.Writer) error {
	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	cmd.Stdin = strings.NewReader(input)
	cmd.Stdout = out
	cmd.Stderr = out
	return wrapError(cmd.Run())
}

// ExitError keeps the original *exec.ExitError reachable through errors.As.
type ExitError struct {
	Err *exec.ExitError
}

func (e *ExitError) Error() string {
	stderr := strings.TrimRight(string(e.Err.Stderr), "\n")
	if stderr == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v: %s", e.Err, stderr)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func wrapError(err error) error {
	var exitError *exec.ExitError
	if errors.As(err, &exitError) {
		return &ExitError{Err: exitError}
	}
	return err
}

// ExitStatus returns the exit status of a command that ran and failed. ok
// is false when err is not such a failure.
func ExitStatus(err error) (status int, ok bool) {
	var e *exec.ExitError
	if !errors.As(err, &e) {
		return 0, false
	}
	return e.ExitCode(), true
}
