package instance

import (
	"errors"
	"os"
	"testing"

	ps "github.com/mitchellh/go-ps"
)

type mockProcess struct {
	pid        int
	executable string
}

func (m *mockProcess) Pid() int {
	return m.pid
}

func (m *mockProcess) PPid() int {
	return 0
}

func (m *mockProcess) Executable() string {
	return m.executable
}

func stubProcesses(t *testing.T, self int, procs map[int]string) {
	t.Helper()
	oldFind, oldPid := findProcessFunc, getpidFunc
	t.Cleanup(func() {
		findProcessFunc = oldFind
		getpidFunc = oldPid
	})
	getpidFunc = func() int { return self }
	findProcessFunc = func(pid int) (ps.Process, error) {
		exe, ok := procs[pid]
		if !ok {
			return nil, nil
		}
		return &mockProcess{pid: pid, executable: exe}, nil
	}
}

func TestAcquireAndRelease(t *testing.T) {
	dir := t.TempDir()
	stubProcesses(t, 100, map[int]string{100: "tripboard"})

	lock, err := Acquire(dir)
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	content, err := os.ReadFile(LockPath(dir))
	if err != nil || string(content) != "100" {
		t.Errorf("lockfile content = %q, %v", content, err)
	}

	// Own pid is never reported as another session.
	if _, ok := Running(dir); ok {
		t.Error("own lockfile should not count as running")
	}

	if err := lock.Release(); err != nil {
		t.Fatalf("Release failed: %v", err)
	}
	if _, err := os.Stat(LockPath(dir)); !errors.Is(err, os.ErrNotExist) {
		t.Error("lockfile should be removed")
	}
	if err := lock.Release(); err != nil {
		t.Errorf("second Release failed: %v", err)
	}
}

func TestRunning(t *testing.T) {
	tests := []struct {
		name    string
		content string
		procs   map[int]string
		wantPid int
		wantOK  bool
	}{
		{"live tripboard", "200", map[int]string{200: "tripboard"}, 200, true},
		{"dead process", "200", map[int]string{}, 0, false},
		{"reused pid", "200", map[int]string{200: "bash"}, 0, false},
		{"malformed", "abc", map[int]string{}, 0, false},
		{"negative", "-1", map[int]string{}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			stubProcesses(t, 100, tt.procs)
			if err := os.WriteFile(LockPath(dir), []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}
			pid, ok := Running(dir)
			if pid != tt.wantPid || ok != tt.wantOK {
				t.Errorf("Running() = %d, %v; want %d, %v", pid, ok, tt.wantPid, tt.wantOK)
			}
		})
	}
}

func TestAcquireRefusesLiveSession(t *testing.T) {
	dir := t.TempDir()
	stubProcesses(t, 100, map[int]string{200: "tripboard"})
	if err := os.WriteFile(LockPath(dir), []byte("200"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Acquire(dir); err == nil {
		t.Error("expected error while another session holds the lock")
	}
}

func TestAcquireReplacesStaleLock(t *testing.T) {
	dir := t.TempDir()
	stubProcesses(t, 100, map[int]string{})
	if err := os.WriteFile(LockPath(dir), []byte("200"), 0600); err != nil {
		t.Fatal(err)
	}
	lock, err := Acquire(dir)
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	defer lock.Release()
}

func TestRunningNoLockfile(t *testing.T) {
	if _, ok := Running(t.TempDir()); ok {
		t.Error("expected no running session without a lockfile")
	}
}
