// Package testutil provides output capture and fixture builders shared by
// package tests.
package testutil

import (
	"bytes"
	"io"
	"os"
	"testing"
)

// redirect swaps *target for a pipe while fn runs and returns what was written.
func redirect(t *testing.T, target **os.File, fn func()) string {
	t.Helper()

	original := *target
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	*target = w

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		_ = r.Close()
		done <- buf.String()
	}()

	defer func() {
		*target = original
	}()
	fn()
	_ = w.Close()

	return <-done
}

// CaptureStdout runs fn and returns everything it wrote to os.Stdout.
func CaptureStdout(t *testing.T, fn func()) string {
	t.Helper()
	return redirect(t, &os.Stdout, fn)
}

// CaptureStderr runs fn and returns everything it wrote to os.Stderr.
func CaptureStderr(t *testing.T, fn func()) string {
	t.Helper()
	return redirect(t, &os.Stderr, fn)
}

// CaptureOutput runs fn and returns what it wrote to os.Stdout and os.Stderr.
func CaptureOutput(t *testing.T, fn func()) (stdout, stderr string) {
	t.Helper()
	stderr = CaptureStderr(t, func() {
		stdout = CaptureStdout(t, fn)
	})
	return stdout, stderr
}
