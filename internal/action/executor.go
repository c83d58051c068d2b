package action

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Executor performs a Request.
type Executor interface {
	Execute(ctx context.Context, req *Request) error
}

// ShellExecutor runs requests through a shell and waits for them to exit.
// The child's stdout is captured and discarded; stdin and stderr are
// passed through.
type ShellExecutor struct {
	Shell  string
	Stdin  io.Reader
	Stderr io.Writer
	log    *zap.Logger
}

// NewShellExecutor creates a ShellExecutor using shell ("sh" when empty).
func NewShellExecutor(shell string, log *zap.Logger) *ShellExecutor {
	if shell == "" {
		shell = "sh"
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ShellExecutor{
		Shell:  shell,
		Stdin:  os.Stdin,
		Stderr: os.Stderr,
		log:    log.Named("exec"),
	}
}

// Execute runs req.Command and blocks until the process exits.
func (e *ShellExecutor) Execute(ctx context.Context, req *Request) error {
	if strings.TrimSpace(req.Command) == "" {
		return fmt.Errorf("%s %q: empty command", req.Kind, req.Key)
	}

	cmd := exec.CommandContext(ctx, e.Shell, shellFlag(e.Shell), req.Command)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stdin = e.Stdin
	cmd.Stderr = e.Stderr

	e.log.Debug("exec", zap.Stringer("kind", req.Kind), zap.String("key", req.Key), zap.String("command", req.Command))
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %q: %w", req.Kind, req.Key, err)
	}
	e.log.Debug("exec done", zap.String("key", req.Key), zap.Int("stdout_bytes", stdout.Len()))
	return nil
}

// shellFlag returns the flag that makes shell read a command string.
func shellFlag(shell string) string {
	base := strings.ToLower(filepath.Base(shell))
	if base == "cmd" || base == "cmd.exe" {
		return "/C"
	}
	return "-c"
}
