package spinner

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncWriter guards a buffer so the spinner goroutine and the test can
// both touch it.
type syncWriter struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (w *syncWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.Write(p)
}

func (w *syncWriter) String() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.String()
}

func TestSpinnerWritesAndClears(t *testing.T) {
	w := &syncWriter{}

	stop := Start(w, "submitting sweep")
	time.Sleep(200 * time.Millisecond)
	stop()

	out := w.String()
	if !strings.Contains(out, "submitting sweep") {
		t.Errorf("expected message in output, got %q", out)
	}
	if !strings.HasSuffix(out, "\r") {
		t.Error("expected final clear to end with carriage return")
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	w := &syncWriter{}
	stop := Start(w, "working")
	stop()
	stop() // must not panic or block
}
