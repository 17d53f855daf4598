package ports

import (
	"context"

	"github.com/chatting/chatting/internal/core/model"
)

// TokenVerifier checks bearer tokens presented by callers.
type TokenVerifier interface {
	// Verify returns the identity the token was issued to, or an error if the token is not valid.
	Verify(ctx context.Context, token string) (model.Caller, error)
}
