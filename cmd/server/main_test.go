package main

import (
	"net/http"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestServe(t *testing.T) {
	t.Run("Listener failure is returned", func(t *testing.T) {
		srv := &http.Server{Addr: "127.0.0.1:-1"}

		done := make(chan error, 1)
		go func() { done <- serve(srv, make(chan os.Signal), time.Second) }()

		select {
		case err := <-done:
			assert.Error(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("serve did not return after the listener failed")
		}
	})

	t.Run("Signal shuts down cleanly", func(t *testing.T) {
		srv := &http.Server{Addr: "127.0.0.1:0"}
		quit := make(chan os.Signal, 1)
		quit <- syscall.SIGTERM

		assert.NoError(t, serve(srv, quit, time.Second))
	})
}
