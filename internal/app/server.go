package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Server HTTP 服务，负责启动监听与优雅关停
type Server struct {
	addr   string
	server *http.Server
}

// NewServer 创建 HTTP 服务
func NewServer(addr string, handler http.Handler) *Server {
	return &Server{
		addr: addr,
		server: &http.Server{
			Addr:    addr,
			Handler: handler,
		},
	}
}

// Addr 返回监听地址
func (s *Server) Addr() string {
	return s.addr
}

// Run 阻塞运行，直到 ctx 结束或监听失败，随后在 stopTimeout 内优雅关停。
// ctx 因信号取消时返回 nil。
func (s *Server) Run(ctx context.Context, stopTimeout time.Duration, log *zap.SugaredLogger) error {
	if s == nil || s.server == nil {
		return errors.New("http server not initialized")
	}

	errCh := make(chan error, 1)
	go func() {
		if log != nil {
			log.Infow("http_listen", "addr", s.addr)
		}
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	var runErr error
	select {
	case <-ctx.Done():
		runErr = ctx.Err()
	case err := <-errCh:
		runErr = err
	}

	if stopTimeout <= 0 {
		stopTimeout = 10 * time.Second
	}
	stopCtx, stopCancel := context.WithTimeout(context.Background(), stopTimeout)
	defer stopCancel()
	if err := s.server.Shutdown(stopCtx); err != nil {
		if log != nil {
			log.Errorw("http_shutdown_failed", "error", err)
		}
	}
	if log != nil {
		log.Infow("http_exit", "addr", s.addr)
	}

	if errors.Is(runErr, context.Canceled) {
		return nil
	}
	return runErr
}
