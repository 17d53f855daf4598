package jwt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chatting/chatting/internal/core/model"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken is returned for tokens that parse but must not be trusted.
	ErrInvalidToken = errors.New("invalid access token")
)

// Claims are the claims carried by access tokens. The caller identity is the subject.
type Claims struct {
	jwt.RegisteredClaims
}

// AuthorityArgs are the mandatory arguments for building an Authority.
type AuthorityArgs struct {
	// Secret is the HMAC key tokens are signed with.
	Secret []byte

	// Issuer is written to and required in the iss claim. Empty disables the check.
	Issuer string
}

// AuthorityOptArgs are the optional arguments for building an Authority
type AuthorityOptArgs = func(*Authority)

// WithNowFunc can be used to override the nowFunc. Useful for testing.
func WithNowFunc(nowFunc func() time.Time) AuthorityOptArgs {
	return func(a *Authority) {
		a.nowFunc = nowFunc
	}
}

// Authority issues and verifies HS256 access tokens.
type Authority struct {
	secret  []byte
	issuer  string
	nowFunc func() time.Time
}

// NewAuthority creates a new Authority.
func NewAuthority(args AuthorityArgs, optArgs ...AuthorityOptArgs) (*Authority, error) {
	if len(args.Secret) == 0 {
		return nil, errors.New("empty signing secret")
	}
	a := &Authority{secret: args.Secret, issuer: args.Issuer, nowFunc: time.Now}
	for _, opt := range optArgs {
		opt(a)
	}
	return a, nil
}

// Issue signs a token for subject, valid for ttl.
func (a *Authority) Issue(subject string, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", errors.New("empty token subject")
	}
	now := a.nowFunc()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    a.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})

	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("error signing token: %w", err)
	}
	return signed, nil
}

// Verify implements ports.TokenVerifier.
func (a *Authority) Verify(_ context.Context, tokenString string) (model.Caller, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(a.nowFunc),
		jwt.WithExpirationRequired(),
	}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, opts...)
	if err != nil {
		return model.Caller{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return model.Caller{}, ErrInvalidToken
	}
	return model.Caller{Subject: claims.Subject}, nil
}
