//go:build unix

package batch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"
)

func TestCheckTimeout(t *testing.T) {
	// Opening a FIFO for reading blocks until a writer shows up.
	fifo := filepath.Join(t.TempDir(), "stalled.records")
	if err := syscall.Mkfifo(fifo, 0o600); err != nil {
		t.Skipf("mkfifo: %v", err)
	}

	timeout := 20 * time.Millisecond
	results := Check(context.Background(), []string{fifo}, Options{Timeout: timeout})

	r := results[0]
	if r.Status != StatusTimeout {
		t.Errorf("status = %s, want timeout", r.Status)
	}
	if !errors.Is(r.Err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want context.DeadlineExceeded", r.Err)
	}
	if r.Duration < timeout {
		t.Errorf("duration = %s, want at least %s", r.Duration, timeout)
	}

	// Release the abandoned reader.
	w, err := os.OpenFile(fifo, os.O_WRONLY, 0)
	if err != nil {
		t.Fatalf("open fifo for writing: %v", err)
	}
	w.Close()
}
