package app

import (
	"context"
	"errors"
	"os/signal"

	"github.com/parcel-next/internal/config"
	"github.com/parcel-next/internal/provider"
	"github.com/parcel-next/internal/router"
)

// BuildServer 组装依赖并构建 HTTP 服务
func BuildServer(cfg *config.Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	container := provider.NewContainer(cfg)
	engine := router.SetupRouter(cfg, container)
	addr := cfg.Server.Host + ":" + cfg.Server.Port
	return NewServer(addr, engine), nil
}

// Run 应用启动入口：构建服务并运行到收到停止信号为止
func Run(opts Options) error {
	opts = normalizeOptions(opts)
	if opts.Config == nil {
		return errors.New("config is nil")
	}

	server, err := BuildServer(opts.Config)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if len(opts.Signals) > 0 {
		var cancel context.CancelFunc
		ctx, cancel = signal.NotifyContext(ctx, opts.Signals...)
		defer cancel()
	}

	opts.Logger.Infow("app_start", "addr", server.Addr())
	return server.Run(ctx, opts.ShutdownTimeout, opts.Logger)
}
