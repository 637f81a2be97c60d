package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const readHeaderTimeout = 10 * time.Second

// Options はサーバー構築時の設定です。
type Options struct {
	ListenAddr       string
	HealthListenAddr string
	ShutdownTimeout  time.Duration
	Logger           *zap.Logger
}

// Server は HTTP API とヘルスチェック用 gRPC サーバーのライフサイクルを管理します。
type Server struct {
	opts       Options
	httpServer *http.Server
	grpcServer *grpc.Server
	health     *health.Server
	log        *zap.Logger
}

// New は指定された handler を提供するサーバーを構築します。
// HealthListenAddr が空の場合、gRPC ヘルスチェックは起動しません。
func New(handler http.Handler, opts Options, grpcOpts ...grpc.ServerOption) *Server {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	s := &Server{
		opts: opts,
		httpServer: &http.Server{
			Addr:              opts.ListenAddr,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		log: log,
	}

	if opts.HealthListenAddr != "" {
		s.grpcServer = grpc.NewServer(grpcOpts...)
		s.health = health.NewServer()
		healthpb.RegisterHealthServer(s.grpcServer, s.health)
	}

	return s
}

// Run はサーバーを起動し、コンテキストがキャンセルされると安全に停止します。
func (s *Server) Run(ctx context.Context) error {
	httpLis, err := net.Listen("tcp", s.opts.ListenAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.opts.ListenAddr, err)
	}

	var grpcLis net.Listener
	if s.grpcServer != nil {
		grpcLis, err = net.Listen("tcp", s.opts.HealthListenAddr)
		if err != nil {
			_ = httpLis.Close()
			return fmt.Errorf("listen on %s: %w", s.opts.HealthListenAddr, err)
		}
	}

	return s.serve(ctx, httpLis, grpcLis)
}

func (s *Server) serve(ctx context.Context, httpLis, grpcLis net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.Info("HTTP server listening", zap.String("addr", httpLis.Addr().String()))
		if err := s.httpServer.Serve(httpLis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve HTTP: %w", err)
		}
		return nil
	})

	if s.grpcServer != nil && grpcLis != nil {
		s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
		g.Go(func() error {
			s.log.Info("gRPC health server listening", zap.String("addr", grpcLis.Addr().String()))
			if err := s.grpcServer.Serve(grpcLis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
				return fmt.Errorf("serve gRPC health: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		return s.shutdown()
	})

	return g.Wait()
}

func (s *Server) shutdown() error {
	if s.health != nil {
		s.health.Shutdown()
	}

	timeout := s.opts.ShutdownTimeout
	if timeout <= 0 {
		timeout = readHeaderTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	err := s.httpServer.Shutdown(ctx)
	if s.grpcServer != nil {
		s.grpcServer.GracefulStop()
	}
	if err != nil {
		return fmt.Errorf("shutdown HTTP: %w", err)
	}

	s.log.Info("server stopped")
	return nil
}
