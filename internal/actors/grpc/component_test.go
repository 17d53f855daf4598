package grpc

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/pubsub"
	"cloud.google.com/go/pubsub/pstest"
	"github.com/chatting/chatting/internal/actors/memory"
	"github.com/chatting/chatting/internal/actors/pubsub/producer"
	"github.com/chatting/chatting/internal/actors/pubsub/subscriber"
	"github.com/chatting/chatting/internal/core/model"
	"github.com/chatting/chatting/internal/core/ports"
	"github.com/chatting/chatting/internal/core/usecase"
	pb "github.com/chatting/chatting/pkg/sdk/v1"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// ComponentTestSuite runs the user service in-process over bufconn, backed by the
// in-memory store, publishing events through a fake pubsub server.
type ComponentTestSuite struct {
	suite.Suite

	server     *grpc.Server
	conn       *grpc.ClientConn
	userClient pb.UserServiceClient
	metrics    *Metrics
	pubsub     *pstest.Server

	cnl    context.CancelFunc
	wg     *sync.WaitGroup
	events <-chan model.UserEvent

	// internal state persisted cross method calls
	createUserRequest  *pb.CreateUserRequest
	createUserResponse *pb.CreateUserResponse

	updateUserRequest  *pb.UpdateUserRequest
	updateUserResponse *pb.UpdateUserResponse

	deleteUserRequest  *pb.DeleteUserRequest
	deleteUserResponse *pb.DeleteUserResponse

	lastErr error
}

func (s *ComponentTestSuite) SetupSuite() {
	ctx, cnl := context.WithCancel(context.Background())
	s.cnl = cnl

	s.pubsub = pstest.NewServer()
	psConn, err := grpc.Dial(s.pubsub.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	s.Require().NoError(err)
	client, err := pubsub.NewClient(ctx, "chatting-test", option.WithGRPCConn(psConn))
	s.Require().NoError(err)
	topic, err := client.CreateTopic(ctx, "user-events")
	s.Require().NoError(err)
	sub, err := client.CreateSubscription(ctx, "user-events-test", pubsub.SubscriptionConfig{Topic: topic})
	s.Require().NoError(err)
	sender, err := producer.NewProducer(topic)
	s.Require().NoError(err)

	provider := usecase.NewPublishing(usecase.PublishingArgs{
		Next:    ports.Bind[memory.Env](memory.NewUserService(), memory.NewStore()),
		Handler: usecase.NewInformer(sender),
	})

	s.metrics, err = NewMetrics(prometheus.NewRegistry())
	s.Require().NoError(err)
	s.server, _ = NewServer(ServerArgs{Provider: provider}, WithMetrics(s.metrics))
	lis := bufconn.Listen(1 << 20)
	go func() { _ = s.server.Serve(lis) }()

	s.conn, err = grpc.DialContext(ctx, "bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	s.Require().NoError(err)
	s.userClient = pb.NewUserServiceClient(s.conn)

	ch := make(chan model.UserEvent, 16)
	s.events = ch
	s.wg = &sync.WaitGroup{}
	s.wg.Add(1)
	go func() {
		defer func() {
			close(ch)
			s.wg.Done()
		}()
		consumer := subscriber.NewSubscriber(subscriber.SubscriberArgs{Subscription: sub, UserEventHandler: channelHandler(ch)})
		_ = consumer.Consume(ctx)
	}()
}

func (s *ComponentTestSuite) TearDownSuite() {
	s.cnl()
	s.wg.Wait()
	_ = s.conn.Close()
	s.server.Stop()
	_ = s.pubsub.Close()
}

type channelHandler chan<- model.UserEvent

func (c channelHandler) Handle(ctx context.Context, event model.UserEvent) error {
	select {
	case c <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func TestComponentTestSuite(t *testing.T) {
	suite.Run(t, new(ComponentTestSuite))
}

func (s *ComponentTestSuite) TestCreateUser() {
	_, when, then := s.gherkin()

	when().
		aCreateUserRequestIsIssued("Alice")

	then().
		theCreateUserResponseContainsAValidUser().
		getUserReturnsTheCreatedUser().
		anEventForTheUserCreationWillEventuallyBeProduced()
}

func (s *ComponentTestSuite) TestUpdateUser() {
	given, when, then := s.gherkin()

	given().
		anExistingUser()

	when().
		theUserGetsRenamed("Alicia")

	then().
		theUpdateResponseReflectsTheUpdateOperation().
		getUserReturnsTheUpdatedUser().
		anEventForTheUserUpdateWillEventuallyBeProduced()
}

func (s *ComponentTestSuite) TestDeleteUser() {
	given, when, then := s.gherkin()

	given().
		anExistingUser().
		theUserGetsRenamed("Alicia")

	when().
		aUserDeletionRequestIsIssued()

	then().
		theDeleteResponseContainsTheLastState().
		getUserFailsWith(codes.NotFound, "user not found").
		anEventForTheUserDeletionWillEventuallyBeProduced()
}

func (s *ComponentTestSuite) TestUnknownUser() {
	_, when, then := s.gherkin()

	when().
		theRequestsTargetAnUnknownUser()

	then().
		everyIDRequestFailedWith(codes.NotFound, "user not found")
}

func (s *ComponentTestSuite) TestMissingUserID() {
	_, when, then := s.gherkin()

	when().
		theRequestsCarryNoUserID()

	then().
		everyIDRequestFailedWith(codes.InvalidArgument, "unspecified user id")
}

func (s *ComponentTestSuite) TestMalformedUserID() {
	for _, id := range []string{"", "not-a-uuid", "018e0a4c-5b9e-7c4a-9d2f-3b3e9e2a13dz"} {
		s.Run(id, func() {
			_, err := s.userClient.GetUser(context.Background(), &pb.GetUserRequest{Id: &pb.UserId{Id: id}})
			s.requireStatus(err, codes.InvalidArgument)
			s.Contains(status.Convert(err).Message(), "invalid user id")

			_, err = s.userClient.UpdateUser(context.Background(), &pb.UpdateUserRequest{Id: &pb.UserId{Id: id}, Name: "x"})
			s.requireStatus(err, codes.InvalidArgument)

			_, err = s.userClient.DeleteUser(context.Background(), &pb.DeleteUserRequest{Id: &pb.UserId{Id: id}})
			s.requireStatus(err, codes.InvalidArgument)
		})
	}
}

func (s *ComponentTestSuite) TestNonCanonicalUserID() {
	id := "{018e0a4c-5b9e-7c4a-9d2f-3b3e9e2a13d5}"
	_, err := s.userClient.GetUser(context.Background(), &pb.GetUserRequest{Id: &pb.UserId{Id: id}})
	s.requireStatus(err, codes.InvalidArgument)
	s.Contains(status.Convert(err).Message(), "value must be a valid UUID")
}

func (s *ComponentTestSuite) TestHealth() {
	resp, err := healthpb.NewHealthClient(s.conn).Check(context.Background(), &healthpb.HealthCheckRequest{Service: "chatting.v1.UserService"})
	s.Require().NoError(err)
	s.Equal(healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}

func (s *ComponentTestSuite) TestMetricsCountByCode() {
	before := testutil.ToFloat64(s.metrics.requests.WithLabelValues("GetUser", codes.InvalidArgument.String()))
	_, err := s.userClient.GetUser(context.Background(), &pb.GetUserRequest{})
	s.requireStatus(err, codes.InvalidArgument)
	after := testutil.ToFloat64(s.metrics.requests.WithLabelValues("GetUser", codes.InvalidArgument.String()))
	s.Equal(before+1, after)
}

type given = func() *ComponentTestSuite
type when = func() *ComponentTestSuite
type then = func() *ComponentTestSuite

func (s *ComponentTestSuite) gherkin() (given, when, then) {
	return func() *ComponentTestSuite { return s }, func() *ComponentTestSuite { return s }, func() *ComponentTestSuite { return s }
}

func (s *ComponentTestSuite) aCreateUserRequestIsIssued(name string) *ComponentTestSuite {
	var err error
	s.createUserRequest = &pb.CreateUserRequest{Name: name}
	s.createUserResponse, err = s.userClient.CreateUser(context.Background(), s.createUserRequest)
	s.Require().NoError(err)
	return s
}

func (s *ComponentTestSuite) anExistingUser() *ComponentTestSuite {
	return s.aCreateUserRequestIsIssued("Alice").
		theCreateUserResponseContainsAValidUser().
		anEventForTheUserCreationWillEventuallyBeProduced()
}

func (s *ComponentTestSuite) theUserGetsRenamed(name string) *ComponentTestSuite {
	var err error
	s.updateUserRequest = &pb.UpdateUserRequest{
		Id:   s.createUserResponse.GetUser().GetId(),
		Name: name,
	}
	s.updateUserResponse, err = s.userClient.UpdateUser(context.Background(), s.updateUserRequest)
	s.Require().NoError(err)
	return s
}

func (s *ComponentTestSuite) aUserDeletionRequestIsIssued() *ComponentTestSuite {
	var err error
	s.deleteUserRequest = &pb.DeleteUserRequest{
		Id: s.createUserResponse.GetUser().GetId(),
	}
	s.deleteUserResponse, err = s.userClient.DeleteUser(context.Background(), s.deleteUserRequest)
	s.Require().NoError(err)
	return s
}

func (s *ComponentTestSuite) theRequestsTargetAnUnknownUser() *ComponentTestSuite {
	created, err := s.userClient.CreateUser(context.Background(), &pb.CreateUserRequest{Name: "ghost"})
	s.Require().NoError(err)
	_, err = s.userClient.DeleteUser(context.Background(), &pb.DeleteUserRequest{Id: created.GetUser().GetId()})
	s.Require().NoError(err)
	return s.issueIDRequests(created.GetUser().GetId())
}

func (s *ComponentTestSuite) theRequestsCarryNoUserID() *ComponentTestSuite {
	return s.issueIDRequests(nil)
}

func (s *ComponentTestSuite) issueIDRequests(id *pb.UserId) *ComponentTestSuite {
	ctx := context.Background()
	_, s.lastErr = s.userClient.GetUser(ctx, &pb.GetUserRequest{Id: id})
	s.requireStatusMessage(s.lastErr)
	_, err := s.userClient.UpdateUser(ctx, &pb.UpdateUserRequest{Id: id, Name: "x"})
	s.Require().Equal(status.Convert(s.lastErr).Proto().String(), status.Convert(err).Proto().String())
	_, err = s.userClient.DeleteUser(ctx, &pb.DeleteUserRequest{Id: id})
	s.Require().Equal(status.Convert(s.lastErr).Proto().String(), status.Convert(err).Proto().String())
	return s
}

func (s *ComponentTestSuite) theCreateUserResponseContainsAValidUser() *ComponentTestSuite {
	user := s.createUserResponse.GetUser()
	s.Require().NotNil(user)
	s.Require().Equal(s.createUserRequest.GetName(), user.GetName())
	s.Require().NotEmpty(user.GetId().GetId())
	s.Require().NoError(user.GetId().Validate())
	s.Require().True(user.GetCreatedAt().AsTime().Equal(user.GetUpdatedAt().AsTime()))
	return s
}

func (s *ComponentTestSuite) getUserReturnsTheCreatedUser() *ComponentTestSuite {
	got, err := s.userClient.GetUser(context.Background(), &pb.GetUserRequest{Id: s.createUserResponse.GetUser().GetId()})
	s.Require().NoError(err)
	s.requireSameUser(s.createUserResponse.GetUser(), got.GetUser())

	again, err := s.userClient.GetUser(context.Background(), &pb.GetUserRequest{Id: s.createUserResponse.GetUser().GetId()})
	s.Require().NoError(err)
	s.requireSameUser(got.GetUser(), again.GetUser())
	return s
}

func (s *ComponentTestSuite) theUpdateResponseReflectsTheUpdateOperation() *ComponentTestSuite {
	created := s.createUserResponse.GetUser()
	updated := s.updateUserResponse.GetUser()
	s.Require().NotNil(updated)
	s.Require().Equal(created.GetId().GetId(), updated.GetId().GetId())
	s.Require().Equal(s.updateUserRequest.GetName(), updated.GetName())
	s.Require().True(created.GetCreatedAt().AsTime().Equal(updated.GetCreatedAt().AsTime()))
	s.Require().True(updated.GetUpdatedAt().AsTime().After(created.GetUpdatedAt().AsTime()))
	return s
}

func (s *ComponentTestSuite) getUserReturnsTheUpdatedUser() *ComponentTestSuite {
	got, err := s.userClient.GetUser(context.Background(), &pb.GetUserRequest{Id: s.updateUserRequest.GetId()})
	s.Require().NoError(err)
	s.requireSameUser(s.updateUserResponse.GetUser(), got.GetUser())
	return s
}

func (s *ComponentTestSuite) theDeleteResponseContainsTheLastState() *ComponentTestSuite {
	s.requireSameUser(s.updateUserResponse.GetUser(), s.deleteUserResponse.GetUser())
	s.Require().Equal("Alicia", s.deleteUserResponse.GetUser().GetName())
	return s
}

func (s *ComponentTestSuite) getUserFailsWith(code codes.Code, msg string) *ComponentTestSuite {
	_, err := s.userClient.GetUser(context.Background(), &pb.GetUserRequest{Id: s.createUserResponse.GetUser().GetId()})
	s.requireStatus(err, code)
	s.Require().Equal(msg, status.Convert(err).Message())
	return s
}

func (s *ComponentTestSuite) everyIDRequestFailedWith(code codes.Code, msg string) *ComponentTestSuite {
	s.requireStatus(s.lastErr, code)
	s.Require().Equal(msg, status.Convert(s.lastErr).Message())
	return s
}

func (s *ComponentTestSuite) anEventForTheUserCreationWillEventuallyBeProduced() *ComponentTestSuite {
	id := s.createUserResponse.GetUser().GetId().GetId()
	return s.anEventWillEventuallyBeProduced(func(event model.UserEvent) bool {
		return event.Before == nil && event.After != nil && event.After.ID.String() == id
	})
}

func (s *ComponentTestSuite) anEventForTheUserUpdateWillEventuallyBeProduced() *ComponentTestSuite {
	id := s.updateUserResponse.GetUser().GetId().GetId()
	return s.anEventWillEventuallyBeProduced(func(event model.UserEvent) bool {
		if event.Before == nil || event.After == nil || event.After.ID.String() != id {
			return false
		}
		s.Require().Equal(s.createUserResponse.GetUser().GetName(), event.Before.Name)
		s.Require().Equal(s.updateUserResponse.GetUser().GetName(), event.After.Name)
		return true
	})
}

func (s *ComponentTestSuite) anEventForTheUserDeletionWillEventuallyBeProduced() *ComponentTestSuite {
	id := s.deleteUserRequest.GetId().GetId()
	return s.anEventWillEventuallyBeProduced(func(event model.UserEvent) bool {
		return event.Before != nil && event.After == nil && event.Before.ID.String() == id
	})
}

func (s *ComponentTestSuite) anEventWillEventuallyBeProduced(match func(model.UserEvent) bool) *ComponentTestSuite {
	timeoutCh := time.After(time.Second * 5)
	for {
		select {
		case event, more := <-s.events:
			if !more {
				s.FailNow("channel closed before reaching desired event")
			}
			if match(event) {
				return s
			}
		case <-timeoutCh:
			s.FailNow("timeout before receiving the expected event")
		}
	}
}

func (s *ComponentTestSuite) requireStatus(err error, code codes.Code) {
	s.Require().Error(err)
	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Require().Equal(code, st.Code(), st.Message())
}

func (s *ComponentTestSuite) requireStatusMessage(err error) {
	s.Require().Error(err)
	s.Require().NotEmpty(status.Convert(err).Message())
}

func (s *ComponentTestSuite) requireSameUser(expected, actual *pb.User) {
	s.Require().NotNil(actual)
	s.Require().Equal(expected.GetId().GetId(), actual.GetId().GetId())
	s.Require().Equal(expected.GetName(), actual.GetName())
	s.Require().True(expected.GetCreatedAt().AsTime().Equal(actual.GetCreatedAt().AsTime()))
	s.Require().True(expected.GetUpdatedAt().AsTime().Equal(actual.GetUpdatedAt().AsTime()))
}

func TestToStatus(t *testing.T) {
	tests := []struct {
		name            string
		method          string
		err             error
		expectedCode    codes.Code
		expectedMessage string
	}{
		{
			name:            "unauthenticated",
			method:          methodGetUser,
			err:             model.RejectUnauthenticated("missing access token"),
			expectedCode:    codes.Unauthenticated,
			expectedMessage: "missing access token",
		},
		{
			name:            "bad request",
			method:          methodUpdateUser,
			err:             model.RejectBadRequest("unspecified user id"),
			expectedCode:    codes.InvalidArgument,
			expectedMessage: "unspecified user id",
		},
		{
			name:            "not found",
			method:          methodDeleteUser,
			err:             model.RejectNotFound("user not found"),
			expectedCode:    codes.NotFound,
			expectedMessage: "user not found",
		},
		{
			name:            "internal failure hides its cause",
			method:          methodCreateUser,
			err:             model.Internal(context.DeadlineExceeded, "create user"),
			expectedCode:    codes.Internal,
			expectedMessage: "failed to create user",
		},
		{
			name:            "unclassified error is internal",
			method:          methodGetUser,
			err:             net.ErrClosed,
			expectedCode:    codes.Internal,
			expectedMessage: "failed to get user",
		},
		{
			name:            "unknown rejection kind is internal",
			method:          methodUpdateUser,
			err:             model.Reject(model.RejectKind(42), "???"),
			expectedCode:    codes.Internal,
			expectedMessage: "failed to update user",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			st := status.Convert(toStatus(context.Background(), test.method, test.err))
			require.Equal(t, test.expectedCode, st.Code())
			require.Equal(t, test.expectedMessage, st.Message())
		})
	}
}
