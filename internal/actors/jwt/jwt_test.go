package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	dummyTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
)

func TestAuthority_IssueAndVerify(t *testing.T) {
	now := dummyTime
	authority, err := NewAuthority(AuthorityArgs{Secret: []byte("s3cret"), Issuer: "chatting"}, WithNowFunc(func() time.Time { return now }))
	require.NoError(t, err)
	other, err := NewAuthority(AuthorityArgs{Secret: []byte("other"), Issuer: "chatting"}, WithNowFunc(func() time.Time { return now }))
	require.NoError(t, err)

	valid, err := authority.Issue("alice", time.Hour)
	require.NoError(t, err)
	foreign, err := other.Issue("mallory", time.Hour)
	require.NoError(t, err)
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "mallory",
		Issuer:    "chatting",
		ExpiresAt: jwt.NewNumericDate(dummyTime.Add(time.Hour)),
	}}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name            string
		token           string
		advance         time.Duration
		expectedSubject string
		expectedErr     assert.ErrorAssertionFunc
	}{
		{
			name:            "valid token",
			token:           valid,
			expectedSubject: "alice",
		},
		{
			name:    "expired token",
			token:   valid,
			advance: 2 * time.Hour,
			expectedErr: func(t assert.TestingT, err error, _ ...interface{}) bool {
				return assert.ErrorIs(t, err, ErrInvalidToken)
			},
		},
		{
			name:  "signed with another secret",
			token: foreign,
			expectedErr: func(t assert.TestingT, err error, _ ...interface{}) bool {
				return assert.ErrorIs(t, err, ErrInvalidToken)
			},
		},
		{
			name:  "unsigned token",
			token: none,
			expectedErr: func(t assert.TestingT, err error, _ ...interface{}) bool {
				return assert.ErrorIs(t, err, ErrInvalidToken)
			},
		},
		{
			name:  "garbage",
			token: "not-a-jwt",
			expectedErr: func(t assert.TestingT, err error, _ ...interface{}) bool {
				return assert.ErrorIs(t, err, ErrInvalidToken)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			now = dummyTime.Add(test.advance)
			caller, err := authority.Verify(context.Background(), test.token)
			if test.expectedErr != nil {
				test.expectedErr(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expectedSubject, caller.Subject)
		})
	}
}

func TestNewAuthority_EmptySecret(t *testing.T) {
	_, err := NewAuthority(AuthorityArgs{})
	assert.Error(t, err)
}
