package grpc

import (
	"context"

	"github.com/chatting/chatting/internal/core/model"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	methodGetUser    = "GetUser"
	methodCreateUser = "CreateUser"
	methodUpdateUser = "UpdateUser"
	methodDeleteUser = "DeleteUser"
)

var internalMessages = map[string]string{
	methodGetUser:    "failed to get user",
	methodCreateUser: "failed to create user",
	methodUpdateUser: "failed to update user",
	methodDeleteUser: "failed to delete user",
}

// toStatus is the only place domain failures become gRPC statuses. Rejections keep
// their message; anything else is reported with a generic message per method.
func toStatus(ctx context.Context, method string, err error) error {
	logger := log.WithContext(ctx).WithField("method", method)

	if r, ok := model.AsRejection(err); ok {
		var code codes.Code
		switch r.Kind {
		case model.Unauthenticated:
			code = codes.Unauthenticated
		case model.BadRequest:
			code = codes.InvalidArgument
		case model.NotFound:
			code = codes.NotFound
		default:
			logger.WithError(err).Error("unclassified rejection")
			return status.Error(codes.Internal, internalMessages[method])
		}
		logger.WithField("reject", r.Kind.String()).Info(r.Message)
		return status.Error(code, r.Message)
	}

	entry := logger.WithError(err)
	if f, ok := model.AsInternal(err); ok {
		entry = entry.WithField("op", f.Op)
	}
	entry.Error("internal failure")
	return status.Error(codes.Internal, internalMessages[method])
}
