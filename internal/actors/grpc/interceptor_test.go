package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/chatting/chatting/internal/actors/jwt"
	"github.com/chatting/chatting/internal/actors/memory"
	"github.com/chatting/chatting/internal/core/model"
	"github.com/chatting/chatting/internal/core/ports"
	"github.com/chatting/chatting/internal/core/usecase"
	pb "github.com/chatting/chatting/pkg/sdk/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func TestAccessTokenInterceptor(t *testing.T) {
	tests := []struct {
		name          string
		md            metadata.MD
		expectedToken string
	}{
		{
			name:          "bearer authorization header",
			md:            metadata.Pairs("authorization", "Bearer abc.def.ghi"),
			expectedToken: "abc.def.ghi",
		},
		{
			name:          "bearer prefix is case insensitive",
			md:            metadata.Pairs("authorization", "bearer abc"),
			expectedToken: "abc",
		},
		{
			name:          "access_token header",
			md:            metadata.Pairs("access_token", "xyz"),
			expectedToken: "xyz",
		},
		{
			name: "non bearer authorization is ignored",
			md:   metadata.Pairs("authorization", "Basic dXNlcjpwdw=="),
		},
		{
			name: "no metadata",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctx := context.Background()
			if test.md != nil {
				ctx = metadata.NewIncomingContext(ctx, test.md)
			}
			var got string
			var found bool
			_, err := AccessTokenInterceptor(ctx, nil, &grpc.UnaryServerInfo{}, func(ctx context.Context, _ interface{}) (interface{}, error) {
				got, found = model.AccessTokenFrom(ctx)
				return nil, nil
			})
			require.NoError(t, err)
			assert.Equal(t, test.expectedToken != "", found)
			assert.Equal(t, test.expectedToken, got)
		})
	}
}

func TestAuthenticatedServer(t *testing.T) {
	authority, err := jwt.NewAuthority(jwt.AuthorityArgs{Secret: []byte("test-secret")})
	require.NoError(t, err)
	foreign, err := jwt.NewAuthority(jwt.AuthorityArgs{Secret: []byte("other-secret")})
	require.NoError(t, err)

	provider := usecase.NewAuthenticated(usecase.AuthenticatedArgs{
		Next:     ports.Bind[memory.Env](memory.NewUserService(), memory.NewStore()),
		Verifier: authority,
	})
	server, _ := NewServer(ServerArgs{Provider: provider})
	lis := bufconn.Listen(1 << 20)
	go func() { _ = server.Serve(lis) }()
	t.Cleanup(server.Stop)

	conn, err := grpc.DialContext(context.Background(), "bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	client := pb.NewUserServiceClient(conn)

	valid, err := authority.Issue("alice", time.Minute)
	require.NoError(t, err)
	forged, err := foreign.Issue("mallory", time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name            string
		md              metadata.MD
		expectedCode    codes.Code
		expectedMessage string
	}{
		{
			name:            "no token",
			expectedCode:    codes.Unauthenticated,
			expectedMessage: "missing access token",
		},
		{
			name:            "token signed with another key",
			md:              metadata.Pairs("authorization", "Bearer "+forged),
			expectedCode:    codes.Unauthenticated,
			expectedMessage: "invalid access token",
		},
		{
			name:            "garbage token",
			md:              metadata.Pairs("access_token", "garbage"),
			expectedCode:    codes.Unauthenticated,
			expectedMessage: "invalid access token",
		},
		{
			name:         "valid token",
			md:           metadata.Pairs("authorization", "Bearer "+valid),
			expectedCode: codes.OK,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctx := context.Background()
			if test.md != nil {
				ctx = metadata.NewOutgoingContext(ctx, test.md)
			}
			resp, err := client.CreateUser(ctx, &pb.CreateUserRequest{Name: "Alice"})
			st := status.Convert(err)
			require.Equal(t, test.expectedCode, st.Code(), st.Message())
			if test.expectedCode != codes.OK {
				assert.Equal(t, test.expectedMessage, st.Message())
				return
			}
			assert.Equal(t, "Alice", resp.GetUser().GetName())
		})
	}
}
