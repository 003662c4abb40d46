package command

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

const (
	EventInstancesCreated    = "instancesCreated"
	EventInstancesTerminated = "instancesTerminated"
)

// Hooks are commands notified of lifecycle events. Each receives one JSON
// line on stdin.
type Hooks struct {
	Commands []Command
	Out      io.Writer
	Logger   *logrus.Logger
}

// HookError reports which hook failed and, when it ran, its exit status.
type HookError struct {
	Command string
	Err     error
}

func (e *HookError) Error() string {
	if status, ok := ExitStatus(e.Err); ok {
		return fmt.Sprintf("hook %q exited with status %d", e.Command, status)
	}
	return fmt.Sprintf("hook %q failed: %v", e.Command, e.Err)
}

func (e *HookError) Unwrap() error {
	return e.Err
}

type hookEvent struct {
	Event   string      `json:"event"`
	Message string      `json:"message"`
	Detail  interface{} `json:"detail"`
}

// Run calls every hook in order and stops at the first failure.
func (h *Hooks) Run(ctx context.Context, event, message string, detail interface{}) error {
	if len(h.Commands) == 0 {
		return nil
	}

	input, err := json.Marshal(hookEvent{Event: event, Message: message, Detail: detail})
	if err != nil {
		return err
	}

	out := h.Out
	if out == nil {
		out = io.Discard
	}

	for _, c := range h.Commands {
		if h.Logger != nil {
			h.Logger.WithField("event", event).Debugf("running hook %s", c.Path)
		}
		if err := c.RunWithStdin(ctx, string(input)+"\n", out); err != nil {
			return &HookError{Command: c.String(), Err: err}
		}
	}
	return nil
}
