package grpc

import (
	"context"
	"strings"

	"github.com/chatting/chatting/internal/core/model"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

const (
	authorizationHeader = "authorization"
	accessTokenHeader   = "access_token"
	bearerPrefix        = "bearer "
)

// AccessTokenInterceptor copies the caller's bearer token from the request metadata
// into the context. It never rejects; authentication is decided by the provider.
// Both "authorization: Bearer <token>" and "access_token: <token>" are accepted.
func AccessTokenInterceptor(ctx context.Context, req interface{}, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if token := accessToken(ctx); token != "" {
		ctx = model.WithAccessToken(ctx, token)
	}
	return handler(ctx, req)
}

func accessToken(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	for _, v := range md.Get(authorizationHeader) {
		if len(v) > len(bearerPrefix) && strings.EqualFold(v[:len(bearerPrefix)], bearerPrefix) {
			return strings.TrimSpace(v[len(bearerPrefix):])
		}
	}
	if values := md.Get(accessTokenHeader); len(values) > 0 {
		return values[0]
	}
	return ""
}
