package app

import (
	"context"
	"net/http"
	"testing"
	"time"
)

func TestServerRunStopsOnContextCancel(t *testing.T) {
	srv := NewServer("127.0.0.1:0", http.NewServeMux())

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx, time.Second, nil)
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run should return nil on context cancel, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("run did not stop after context cancel")
	}
}

func TestServerRunReturnsListenError(t *testing.T) {
	// 非法端口，监听必定失败
	srv := NewServer("127.0.0.1:-1", http.NewServeMux())

	err := srv.Run(context.Background(), time.Second, nil)
	if err == nil {
		t.Fatalf("run should surface listen error")
	}
}
