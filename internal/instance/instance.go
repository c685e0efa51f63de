// Package instance records the running TUI in a lockfile so shell commands
// can tell when an interactive session is open.
package instance

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	ps "github.com/mitchellh/go-ps"

	"github.com/julianstephens/tripboard/internal/constants"
)

var (
	findProcessFunc = ps.FindProcess
	getpidFunc      = os.Getpid
)

// Lock is a held lockfile.
type Lock struct {
	path string
}

// LockPath returns the lockfile location inside dir.
func LockPath(dir string) string {
	return filepath.Join(dir, constants.LockfileName)
}

// Acquire writes the current pid to the lockfile. A stale lockfile left by a
// dead process is replaced.
func Acquire(dir string) (*Lock, error) {
	if pid, ok := Running(dir); ok {
		return nil, fmt.Errorf("another %s session is running (pid %d)", constants.AppName, pid)
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}
	path := LockPath(dir)
	if err := os.WriteFile(path, []byte(strconv.Itoa(getpidFunc())), 0600); err != nil {
		return nil, fmt.Errorf("failed to write lockfile: %w", err)
	}
	return &Lock{path: path}, nil
}

// Release removes the lockfile.
func (l *Lock) Release() error {
	if l == nil {
		return nil
	}
	if err := os.Remove(l.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Running returns the pid of another live tripboard process holding the
// lockfile in dir.
func Running(dir string) (int, bool) {
	content, err := os.ReadFile(LockPath(dir))
	if err != nil {
		return 0, false
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(content)))
	if err != nil || pid <= 0 || pid == getpidFunc() {
		return 0, false
	}

	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return 0, false
	}
	if !strings.HasPrefix(process.Executable(), constants.AppName) {
		return 0, false
	}
	return pid, true
}
