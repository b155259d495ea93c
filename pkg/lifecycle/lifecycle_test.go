package lifecycle_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/forestscape/soldmis/pkg/lifecycle"
)

func TestStartupReadiness(t *testing.T) {
	lc := lifecycle.New()

	var started atomic.Bool
	lc.OnStartup(func() {
		started.Store(true)
	})

	if lc.Ready() {
		t.Error("should not be ready before WaitForStartup")
	}

	lc.WaitForStartup()

	if !started.Load() {
		t.Error("startup hook did not run")
	}
	if !lc.Ready() {
		t.Error("should be ready after WaitForStartup")
	}
}

func TestShutdownRunsHooks(t *testing.T) {
	lc := lifecycle.New()

	var cleaned atomic.Bool
	lc.OnShutdown(func() {
		<-lc.Context().Done()
		cleaned.Store(true)
	})

	if err := lc.Shutdown(time.Second); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}
	if !cleaned.Load() {
		t.Error("shutdown hook did not run")
	}
}

func TestShutdownTimeout(t *testing.T) {
	lc := lifecycle.New()

	release := make(chan struct{})
	lc.OnShutdown(func() {
		<-release
	})

	if err := lc.Shutdown(10 * time.Millisecond); err == nil {
		t.Error("expected timeout error")
	}
	close(release)
}
