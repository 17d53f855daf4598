package ports

import (
	"context"
	"testing"

	"github.com/chatting/chatting/internal/core/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingEnv struct {
	name string
}

type recordingService struct {
	calls []string
	envs  []recordingEnv
	err   error
}

func (s *recordingService) record(call string, env recordingEnv) {
	s.calls = append(s.calls, call)
	s.envs = append(s.envs, env)
}

func (s *recordingService) GetUser(_ context.Context, env recordingEnv, args model.GetUserArgs) (*model.User, error) {
	s.record("get", env)
	return &model.User{ID: args.ID}, s.err
}

func (s *recordingService) CreateUser(_ context.Context, env recordingEnv, args model.CreateUserArgs) (*model.User, error) {
	s.record("create", env)
	return &model.User{Name: args.Name}, s.err
}

func (s *recordingService) UpdateUser(_ context.Context, env recordingEnv, args model.UpdateUserArgs) (*model.User, error) {
	s.record("update", env)
	return &model.User{ID: args.ID, Name: args.Name}, s.err
}

func (s *recordingService) UpdateUserTracked(_ context.Context, env recordingEnv, args model.UpdateUserArgs) (*model.User, *model.User, error) {
	s.record("update tracked", env)
	return &model.User{ID: args.ID, Name: "before"}, &model.User{ID: args.ID, Name: args.Name}, s.err
}

func (s *recordingService) DeleteUser(_ context.Context, env recordingEnv, args model.DeleteUserArgs) (*model.User, error) {
	s.record("delete", env)
	return &model.User{ID: args.ID}, s.err
}

func TestBind_ThreadsEnvironment(t *testing.T) {
	ctx := context.Background()
	svc := &recordingService{}
	env := recordingEnv{name: "primary"}
	provider := Bind[recordingEnv](svc, env)
	id := uuid.New()

	got, err := provider.GetUser(ctx, model.GetUserArgs{ID: id})
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)

	got, err = provider.CreateUser(ctx, model.CreateUserArgs{Name: "Alice"})
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)

	got, err = provider.UpdateUser(ctx, model.UpdateUserArgs{ID: id, Name: "Alicia"})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", got.Name)

	before, after, err := provider.UpdateUserTracked(ctx, model.UpdateUserArgs{ID: id, Name: "Ally"})
	require.NoError(t, err)
	assert.Equal(t, "before", before.Name)
	assert.Equal(t, "Ally", after.Name)

	got, err = provider.DeleteUser(ctx, model.DeleteUserArgs{ID: id})
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)

	assert.Equal(t, []string{"get", "create", "update", "update tracked", "delete"}, svc.calls)
	for _, e := range svc.envs {
		assert.Equal(t, env, e)
	}
}

func TestShared_DelegatesUnchanged(t *testing.T) {
	ctx := context.Background()
	rejection := model.RejectNotFound("user not found")
	svc := &recordingService{err: rejection}
	shared := Shared(Bind[recordingEnv](svc, recordingEnv{name: "shared"}))
	id := uuid.New()

	_, err := shared.GetUser(ctx, model.GetUserArgs{ID: id})
	assert.Same(t, rejection, err)
	_, err = shared.UpdateUser(ctx, model.UpdateUserArgs{ID: id})
	assert.Same(t, rejection, err)
	_, err = shared.DeleteUser(ctx, model.DeleteUserArgs{ID: id})
	assert.Same(t, rejection, err)
	_, err = shared.CreateUser(ctx, model.CreateUserArgs{})
	assert.Same(t, rejection, err)

	assert.Equal(t, []string{"get", "update", "delete", "create"}, svc.calls)
	assert.Same(t, shared, Shared(shared))
}
