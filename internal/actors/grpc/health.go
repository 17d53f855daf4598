package grpc

import (
	pb "github.com/chatting/chatting/pkg/sdk/v1"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// NewHealthServer returns a grpc.health.v1 server reporting the user service and
// the whole server as SERVING. Call Shutdown on it when draining.
func NewHealthServer() *health.Server {
	srv := health.NewServer()
	srv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	srv.SetServingStatus(pb.UserService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	return srv
}
