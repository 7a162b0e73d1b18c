package ec2

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/imamik/stackplan/internal/errdefs"
)

// DefaultBinary is the aws CLI executable name looked up on PATH.
const DefaultBinary = "aws"

// Runner executes a single cloud provider command.
type Runner interface {
	Run(ctx context.Context, args ...string) ([]byte, error)
}

// CLIRunner runs commands through the aws CLI.
type CLIRunner struct {
	// Binary is the executable to run. Defaults to DefaultBinary.
	Binary string
	// Profile is the named credential profile passed via --profile.
	Profile string
}

// NewCLIRunner creates a runner for the given credential profile.
func NewCLIRunner(profile string) *CLIRunner {
	return &CLIRunner{Binary: DefaultBinary, Profile: profile}
}

// Run executes the binary with args and returns standard output.
// A non-zero exit or any output on standard error is an external call error.
func (r *CLIRunner) Run(ctx context.Context, args ...string) ([]byte, error) {
	binary := r.Binary
	if binary == "" {
		binary = DefaultBinary
	}
	if r.Profile != "" {
		args = append(args, "--profile", r.Profile)
	}

	var stdout, stderr bytes.Buffer
	// #nosec G204 - arguments are built by Client from fixed query templates
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if msg := strings.TrimSpace(stderr.String()); msg != "" {
		return nil, errdefs.ExternalCall(err, "%s %s: %s", binary, strings.Join(args, " "), msg)
	}
	if err != nil {
		return nil, errdefs.ExternalCall(err, "%s %s", binary, strings.Join(args, " "))
	}

	return stdout.Bytes(), nil
}
