package main

import (
	"context"
	"net/http"
	"testing"
	"time"
)

type dummyHandler struct{}

func (d dummyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

func TestStartServerAndShutdown(t *testing.T) {
	srv := startServer(dummyHandler{}, "0") // random port
	if srv == nil {
		t.Fatalf("expected server")
	}

	// Give server a moment to start
	time.Sleep(50 * time.Millisecond)

	// Directly call Shutdown to simulate the graceful flow; it must complete
	// without panicking.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && err != http.ErrServerClosed {
		t.Fatalf("shutdown err: %v", err)
	}
}

func TestGracefulShutdown_Cleanup(t *testing.T) {
	srv := startServer(dummyHandler{}, "0")

	cleaned := make(chan struct{}, 1)
	done := make(chan struct{})
	go func() {
		gracefulShutdown(context.Background(), srv, func() { close(cleaned) })
		close(done)
	}()

	// The signal channel cannot be triggered portably from a test; shut the
	// server down directly and verify the goroutine does not block forever on
	// a closed server.
	time.Sleep(50 * time.Millisecond)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)

	select {
	case <-done:
		// gracefulShutdown returned after the signal; cleanup must have run
		select {
		case <-cleaned:
		default:
			t.Fatalf("cleanup was not invoked")
		}
	case <-time.After(200 * time.Millisecond):
		// still waiting on the OS signal, which is the expected steady state
	}
}
