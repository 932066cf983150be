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

	"github.com/ogurasousui/codex-employee-shifts/internal/adapters/grpc/handler"
	"github.com/ogurasousui/codex-employee-shifts/internal/adapters/grpc/interceptor"
	"github.com/ogurasousui/codex-employee-shifts/internal/adapters/grpc/rpc"
	"github.com/ogurasousui/codex-employee-shifts/internal/adapters/rest"
	"github.com/ogurasousui/codex-employee-shifts/internal/core/employee"
	"github.com/ogurasousui/codex-employee-shifts/internal/core/shift"
	"github.com/ogurasousui/codex-employee-shifts/internal/platform/config"
)

const shutdownTimeout = 10 * time.Second

// Server は gRPC サーバーと REST サーバーのライフサイクルを管理します。
type Server struct {
	listenAddr     string
	httpListenAddr string
	grpcServer     *grpc.Server
	httpServer     *http.Server
	logger         *zap.Logger
}

// New は設定されたアドレスで待ち受けるサーバーを構築します。HTTPListenAddr が空の場合は gRPC のみ起動します。
func New(cfg config.ServerConfig, shifts shift.UseCase, employees employee.UseCase, logger *zap.Logger, opts ...grpc.ServerOption) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	opts = append([]grpc.ServerOption{grpc.ChainUnaryInterceptor(interceptor.UnaryLogging(logger))}, opts...)
	srv := grpc.NewServer(opts...)
	rpc.RegisterShiftServiceServer(srv, handler.NewShiftGrpcHandler(shifts))
	rpc.RegisterEmployeeServiceServer(srv, handler.NewEmployeeGrpcHandler(employees))

	s := &Server{
		listenAddr:     cfg.ListenAddr,
		httpListenAddr: cfg.HTTPListenAddr,
		grpcServer:     srv,
		logger:         logger,
	}
	if cfg.HTTPListenAddr != "" {
		s.httpServer = &http.Server{
			Handler:           rest.NewRouter(shifts, logger),
			ReadHeaderTimeout: 5 * time.Second,
		}
	}
	return s
}

// Run はリスナーを開いてサーバーを起動し、コンテキストがキャンセルされると GracefulStop します。
func (s *Server) Run(ctx context.Context) error {
	grpcLis, err := net.Listen("tcp", s.listenAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.listenAddr, err)
	}

	var httpLis net.Listener
	if s.httpServer != nil {
		httpLis, err = net.Listen("tcp", s.httpListenAddr)
		if err != nil {
			_ = grpcLis.Close()
			return fmt.Errorf("listen on %s: %w", s.httpListenAddr, err)
		}
	}

	return s.Serve(ctx, grpcLis, httpLis)
}

// Serve は与えられたリスナーでサーバーを起動します。httpLis が nil の場合 REST API は起動しません。
func (s *Server) Serve(ctx context.Context, grpcLis, httpLis net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("gRPC server listening", zap.String("addr", grpcLis.Addr().String()))
		if err := s.grpcServer.Serve(grpcLis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("serve gRPC: %w", err)
		}
		return nil
	})

	if s.httpServer != nil && httpLis != nil {
		g.Go(func() error {
			s.logger.Info("HTTP server listening", zap.String("addr", httpLis.Addr().String()))
			if err := s.httpServer.Serve(httpLis); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("serve HTTP: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		s.GracefulStop()
		return nil
	})

	return g.Wait()
}

// GracefulStop はサーバーを安全に停止します。
func (s *Server) GracefulStop() {
	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Warn("HTTP server shutdown", zap.Error(err))
		}
	}
	s.grpcServer.GracefulStop()
}
