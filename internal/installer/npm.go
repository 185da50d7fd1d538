package installer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// NpmInstaller installs packages with `npm install --save-dev`.
type NpmInstaller struct {
	// Bin overrides the npm executable; defaults to "npm" on PATH.
	Bin string
	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

func (n *NpmInstaller) lookPath() (string, error) {
	bin := n.Bin
	if bin == "" {
		bin = "npm"
	}
	path, err := exec.LookPath(bin)
	if err != nil {
		return "", fmt.Errorf("installing dependencies requires npm: %w", err)
	}
	return path, nil
}

// Install runs npm in dir and streams its output to the configured writers.
// A non-zero npm exit is reported through Output.ExitCode, not as an error.
func (n *NpmInstaller) Install(ctx context.Context, dir string, packages []string) (*Output, error) {
	if len(packages) == 0 {
		return &Output{}, nil
	}

	npmBin, err := n.lookPath()
	if err != nil {
		return nil, err
	}

	args := append([]string{"install", "--save-dev"}, packages...)
	cmd := exec.CommandContext(ctx, npmBin, args...)
	cmd.Dir = dir

	stdout := n.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := n.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = io.MultiWriter(stdout, &stdoutBuf)
	cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)

	err = cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			output.ExitCode = exitErr.ExitCode()
			return output, nil
		}
		return output, fmt.Errorf("running npm install: %w", err)
	}
	return output, nil
}

// Version returns the output of `npm --version`.
func (n *NpmInstaller) Version(ctx context.Context) (string, error) {
	npmBin, err := n.lookPath()
	if err != nil {
		return "", err
	}
	out, err := exec.CommandContext(ctx, npmBin, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("running npm --version: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}
