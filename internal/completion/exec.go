package completion

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/cloudsh/cloudsh/internal/serrors"
)

const (
	// DefaultProviderTimeout bounds how long an external command may
	// run before its values are abandoned
	DefaultProviderTimeout = 3 * time.Second
	// MaxProviderOutput caps how much command output is parsed (1MB)
	MaxProviderOutput = 1024 * 1024
)

// ExecProvider wraps an external command as a value provider. The
// command is run with a timeout and its stdout is parsed one value per
// line. Declared in the command table as `command: mycli vm list`.
func ExecProvider(command string) Provider {
	return Provider{
		Values: func() ([]string, error) {
			return runValueCommand(command, DefaultProviderTimeout)
		},
	}
}

func runValueCommand(command string, timeout time.Duration) ([]string, error) {
	parts := strings.Fields(command)
	if len(parts) == 0 {
		return nil, fmt.Errorf("empty provider command")
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, parts[0], parts[1:]...)
	output, err := cmd.Output()
	if ctx.Err() == context.DeadlineExceeded {
		return nil, serrors.NewProviderError(command, fmt.Sprintf("provider command timed out after %s", timeout), nil)
	}
	if err != nil {
		return nil, serrors.NewProviderError(command, "provider command failed", err)
	}
	if len(output) > MaxProviderOutput {
		output = output[:MaxProviderOutput]
	}

	return parseValueOutput(output), nil
}

// parseValueOutput splits command output into one value per line,
// trimming whitespace and dropping empty lines.
func parseValueOutput(output []byte) []string {
	var values []string
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		values = append(values, line)
	}
	return values
}
