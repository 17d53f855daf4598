package grpc

import (
	"github.com/chatting/chatting/internal/core/ports"
	pb "github.com/chatting/chatting/pkg/sdk/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServerArgs are the mandatory args to build the gRPC server.
type ServerArgs struct {
	// Provider serves the user operations.
	Provider ports.UserProvider
}

// ServerOptArgs are the optional arguments for building the gRPC server.
type ServerOptArgs = func(*serverConfig)

type serverConfig struct {
	metrics *Metrics
	options []grpc.ServerOption
}

// WithMetrics records every call in m.
func WithMetrics(m *Metrics) ServerOptArgs {
	return func(c *serverConfig) {
		c.metrics = m
	}
}

// WithServerOptions appends raw grpc server options.
func WithServerOptions(opts ...grpc.ServerOption) ServerOptArgs {
	return func(c *serverConfig) {
		c.options = append(c.options, opts...)
	}
}

// NewServer builds a gRPC server exposing the user service, the standard health
// service and server reflection.
func NewServer(args ServerArgs, optArgs ...ServerOptArgs) (*grpc.Server, *health.Server) {
	cfg := &serverConfig{}
	for _, opt := range optArgs {
		opt(cfg)
	}

	interceptors := []grpc.UnaryServerInterceptor{}
	if cfg.metrics != nil {
		interceptors = append(interceptors, cfg.metrics.UnaryInterceptor)
	}
	interceptors = append(interceptors, AccessTokenInterceptor)

	s := grpc.NewServer(append(cfg.options, grpc.ChainUnaryInterceptor(interceptors...))...)
	pb.RegisterUserServiceServer(s, NewUserService(UserServiceArgs{Provider: args.Provider}))
	healthSrv := NewHealthServer()
	healthpb.RegisterHealthServer(s, healthSrv)
	reflection.Register(s)
	return s, healthSrv
}
