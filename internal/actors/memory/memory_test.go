package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/chatting/chatting/internal/core/model"
	"github.com/chatting/chatting/internal/core/ports/portstest"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	dummyTime = time.Date(2024, 3, 1, 12, 0, 0, 123456789, time.UTC)
)

func TestUserService_Conformance(t *testing.T) {
	portstest.RunUserService[Env](t, NewUserService(), NewStore())
}

func TestUserService_CreateUser(t *testing.T) {
	fixedID := uuid.MustParse("018e0a4c-0000-7000-8000-000000000001")
	idErr := errors.New("entropy exhausted")

	tests := []struct {
		name        string
		idFunc      func() (uuid.UUID, error)
		existing    []model.User
		expected    *model.User
		expectedErr func(t *testing.T, err error)
	}{
		{
			name:   "stores user with truncated clock",
			idFunc: func() (uuid.UUID, error) { return fixedID, nil },
			expected: &model.User{
				ID:        fixedID,
				Name:      "Alice",
				CreatedAt: dummyTime.Truncate(time.Microsecond),
				UpdatedAt: dummyTime.Truncate(time.Microsecond),
			},
		},
		{
			name:   "id generation failure is internal",
			idFunc: func() (uuid.UUID, error) { return uuid.Nil, idErr },
			expectedErr: func(t *testing.T, err error) {
				_, ok := model.AsInternal(err)
				assert.True(t, ok)
				assert.ErrorIs(t, err, idErr)
			},
		},
		{
			name:     "id collision is internal",
			idFunc:   func() (uuid.UUID, error) { return fixedID, nil },
			existing: []model.User{{ID: fixedID, Name: "Zed"}},
			expectedErr: func(t *testing.T, err error) {
				_, ok := model.AsInternal(err)
				assert.True(t, ok)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			store := NewStore()
			for _, u := range test.existing {
				store.users[u.ID] = u
			}
			svc := NewUserService(WithIDFunc(test.idFunc), WithNowFunc(func() time.Time { return dummyTime }))

			got, err := svc.CreateUser(context.Background(), store, model.CreateUserArgs{Name: "Alice"})
			if test.expectedErr != nil {
				test.expectedErr(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expected, got)
		})
	}
}

func TestUserService_UpdateUser_FrozenClock(t *testing.T) {
	store := NewStore()
	svc := NewUserService(WithNowFunc(func() time.Time { return dummyTime }))
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, store, model.CreateUserArgs{Name: "Alice"})
	require.NoError(t, err)

	updated, err := svc.UpdateUser(ctx, store, model.UpdateUserArgs{ID: created.ID, Name: "Alicia"})
	require.NoError(t, err)
	assert.Equal(t, created.UpdatedAt.Add(time.Microsecond), updated.UpdatedAt)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUserService_CancelledContext(t *testing.T) {
	store := NewStore()
	svc := NewUserService()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.CreateUser(ctx, store, model.CreateUserArgs{Name: "Alice"})
	_, ok := model.AsInternal(err)
	assert.True(t, ok)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, store.Len())
}

func TestUserService_ConcurrentUpdates(t *testing.T) {
	store := NewStore()
	svc := NewUserService()
	ctx := context.Background()
	created, err := svc.CreateUser(ctx, store, model.CreateUserArgs{Name: "start"})
	require.NoError(t, err)

	const workers = 16
	var wg sync.WaitGroup
	results := make([]*model.User, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u, err := svc.UpdateUser(ctx, store, model.UpdateUserArgs{ID: created.ID, Name: "worker"})
			assert.NoError(t, err)
			results[i] = u
		}(i)
	}
	wg.Wait()

	seen := make(map[time.Time]struct{})
	for _, u := range results {
		require.NotNil(t, u)
		_, dup := seen[u.UpdatedAt]
		assert.False(t, dup)
		seen[u.UpdatedAt] = struct{}{}
	}
}
