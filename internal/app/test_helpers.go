package app

import (
	"bytes"
	"context"
	"sync"
	"testing"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// RecordingRearranger remembers every job it receives and returns Err.
type RecordingRearranger struct {
	mu   sync.Mutex
	Jobs []Job
	Err  error
}

func (r *RecordingRearranger) Rearrange(_ context.Context, job Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Jobs = append(r.Jobs, job)
	return r.Err
}

// SetupAppTest creates a new app instance with debug logging captured in
// the returned buffer.
func SetupAppTest(t *testing.T, cfg Config, r Rearranger) (*App, *SafeBuffer) {
	t.Helper()

	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	appConfig, err := NewConfig(cfg)
	if err != nil {
		t.Fatalf("invalid test config: %v", err)
	}

	logBuffer := &SafeBuffer{}
	return NewApp(logBuffer, appConfig, r), logBuffer
}
