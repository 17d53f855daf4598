// Package portstest holds behavioral checks shared by every ports.UserService implementation.
package portstest

import (
	"context"
	"testing"
	"time"

	"github.com/chatting/chatting/internal/core/model"
	"github.com/chatting/chatting/internal/core/ports"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunUserService exercises the observable contract of svc bound to env.
// The storage behind env may contain other users but must be writable.
func RunUserService[E any](t *testing.T, svc ports.UserService[E], env E) {
	provider := ports.Bind[E](svc, env)

	t.Run("create assigns fresh id and equal timestamps", func(t *testing.T) {
		ctx := context.Background()
		seen := make(map[uuid.UUID]struct{})
		for _, name := range []string{"Alice", "", "Ünïcødé 名前", "Alice", "$name", "$$NOW", "{\"$gt\": \"\"}"} {
			user, err := provider.CreateUser(ctx, model.CreateUserArgs{Name: name})
			require.NoError(t, err)
			assert.Equal(t, name, user.Name)
			assert.NotEqual(t, uuid.Nil, user.ID)
			assert.Equal(t, user.CreatedAt, user.UpdatedAt)
			assert.Equal(t, time.UTC, user.CreatedAt.Location())
			_, dup := seen[user.ID]
			assert.False(t, dup, "id %s issued twice", user.ID)
			seen[user.ID] = struct{}{}
		}
	})

	t.Run("unknown id yields not found", func(t *testing.T) {
		ctx := context.Background()
		id := uuid.New()

		_, err := provider.GetUser(ctx, model.GetUserArgs{ID: id})
		RequireRejection(t, err, model.NotFound)

		_, err = provider.UpdateUser(ctx, model.UpdateUserArgs{ID: id, Name: "x"})
		RequireRejection(t, err, model.NotFound)

		_, err = provider.DeleteUser(ctx, model.DeleteUserArgs{ID: id})
		RequireRejection(t, err, model.NotFound)
	})

	t.Run("get round trips and is repeatable", func(t *testing.T) {
		ctx := context.Background()
		created, err := provider.CreateUser(ctx, model.CreateUserArgs{Name: "Bob"})
		require.NoError(t, err)

		first, err := provider.GetUser(ctx, model.GetUserArgs{ID: created.ID})
		require.NoError(t, err)
		assertSameUser(t, *created, *first)

		second, err := provider.GetUser(ctx, model.GetUserArgs{ID: created.ID})
		require.NoError(t, err)
		assertSameUser(t, *first, *second)
	})

	t.Run("update renames and advances updated_at", func(t *testing.T) {
		ctx := context.Background()
		created, err := provider.CreateUser(ctx, model.CreateUserArgs{Name: "Carol"})
		require.NoError(t, err)

		updated, err := provider.UpdateUser(ctx, model.UpdateUserArgs{ID: created.ID, Name: "Caroline"})
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "Caroline", updated.Name)
		assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))
		assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

		again, err := provider.UpdateUser(ctx, model.UpdateUserArgs{ID: created.ID, Name: "Caroline"})
		require.NoError(t, err)
		assert.True(t, again.UpdatedAt.After(updated.UpdatedAt))

		got, err := provider.GetUser(ctx, model.GetUserArgs{ID: created.ID})
		require.NoError(t, err)
		assertSameUser(t, *again, *got)
	})

	t.Run("update stores names verbatim", func(t *testing.T) {
		ctx := context.Background()
		created, err := provider.CreateUser(ctx, model.CreateUserArgs{Name: "Erin"})
		require.NoError(t, err)

		for _, name := range []string{"$name", "$_id", "$$NOW", "$updated_at", ""} {
			updated, err := provider.UpdateUser(ctx, model.UpdateUserArgs{ID: created.ID, Name: name})
			require.NoError(t, err, name)
			assert.Equal(t, name, updated.Name)

			got, err := provider.GetUser(ctx, model.GetUserArgs{ID: created.ID})
			require.NoError(t, err, name)
			assertSameUser(t, *updated, *got)
		}
	})

	t.Run("tracked update reports the replaced state", func(t *testing.T) {
		ctx := context.Background()
		created, err := provider.CreateUser(ctx, model.CreateUserArgs{Name: "Frank"})
		require.NoError(t, err)
		renamed, err := provider.UpdateUser(ctx, model.UpdateUserArgs{ID: created.ID, Name: "Francis"})
		require.NoError(t, err)

		before, after, err := provider.UpdateUserTracked(ctx, model.UpdateUserArgs{ID: created.ID, Name: "Frankie"})
		require.NoError(t, err)
		assertSameUser(t, *renamed, *before)
		assert.Equal(t, "Frankie", after.Name)
		assert.True(t, after.UpdatedAt.After(before.UpdatedAt))

		got, err := provider.GetUser(ctx, model.GetUserArgs{ID: created.ID})
		require.NoError(t, err)
		assertSameUser(t, *after, *got)

		_, _, err = provider.UpdateUserTracked(ctx, model.UpdateUserArgs{ID: uuid.New(), Name: "x"})
		RequireRejection(t, err, model.NotFound)
	})

	t.Run("delete returns prior state", func(t *testing.T) {
		ctx := context.Background()
		created, err := provider.CreateUser(ctx, model.CreateUserArgs{Name: "Dave"})
		require.NoError(t, err)
		updated, err := provider.UpdateUser(ctx, model.UpdateUserArgs{ID: created.ID, Name: "David"})
		require.NoError(t, err)

		deleted, err := provider.DeleteUser(ctx, model.DeleteUserArgs{ID: created.ID})
		require.NoError(t, err)
		assertSameUser(t, *updated, *deleted)

		_, err = provider.GetUser(ctx, model.GetUserArgs{ID: created.ID})
		RequireRejection(t, err, model.NotFound)

		_, err = provider.DeleteUser(ctx, model.DeleteUserArgs{ID: created.ID})
		RequireRejection(t, err, model.NotFound)
	})
}

// RequireRejection fails t unless err is a rejection of the given kind.
func RequireRejection(t *testing.T, err error, kind model.RejectKind) {
	t.Helper()
	require.True(t, IsRejection(err, kind), "expected a %s rejection, got %v", kind, err)
}

// IsRejection reports whether err is, or wraps, a rejection of the given kind.
func IsRejection(err error, kind model.RejectKind) bool {
	r, ok := model.AsRejection(err)
	return ok && r.Kind == kind
}

func assertSameUser(t *testing.T, expected, actual model.User) {
	t.Helper()
	assert.Equal(t, expected.ID, actual.ID)
	assert.Equal(t, expected.Name, actual.Name)
	assert.True(t, expected.CreatedAt.Equal(actual.CreatedAt), "created_at %v != %v", expected.CreatedAt, actual.CreatedAt)
	assert.True(t, expected.UpdatedAt.Equal(actual.UpdatedAt), "updated_at %v != %v", expected.UpdatedAt, actual.UpdatedAt)
}
