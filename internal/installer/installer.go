package installer

import (
	"context"
	"fmt"
)

// Installer installs npm packages into a project directory.
type Installer interface {
	// Install adds packages ("name@range") as dev dependencies of the
	// project at dir.
	Install(ctx context.Context, dir string, packages []string) (*Output, error)
	// Version reports the package manager version, or an error when the
	// tool is not available.
	Version(ctx context.Context) (string, error)
}

// Output captures the result of an install.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Supported package manager identifiers.
const (
	ManagerNpm = "npm"
)

// Dispatch returns the Installer for the given package manager. An empty
// name selects npm. Unknown values produce an installer that always fails.
func Dispatch(manager string) Installer {
	switch manager {
	case "", ManagerNpm:
		return &NpmInstaller{}
	default:
		return &unknownInstaller{name: manager}
	}
}

// unknownInstaller is returned when the manager identifier is not recognized.
type unknownInstaller struct {
	name string
}

func (u *unknownInstaller) Install(_ context.Context, _ string, _ []string) (*Output, error) {
	return nil, u.err()
}

func (u *unknownInstaller) Version(_ context.Context) (string, error) {
	return "", u.err()
}

func (u *unknownInstaller) err() error {
	return fmt.Errorf("unknown package manager %q: supported managers are %q", u.name, ManagerNpm)
}
