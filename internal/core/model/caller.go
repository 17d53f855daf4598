package model

import "context"

// Caller is the authenticated identity behind a request.
type Caller struct {
	// Subject identifies the principal the access token was issued to.
	Subject string
}

type accessTokenKey struct{}

type callerKey struct{}

// WithAccessToken stores the raw bearer token presented by the caller.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, accessTokenKey{}, token)
}

// AccessTokenFrom returns the raw bearer token, if any.
func AccessTokenFrom(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(accessTokenKey{}).(string)
	return token, ok && token != ""
}

// WithCaller stores the verified caller identity.
func WithCaller(ctx context.Context, caller Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

// CallerFrom returns the verified caller identity, if any.
func CallerFrom(ctx context.Context) (Caller, bool) {
	caller, ok := ctx.Value(callerKey{}).(Caller)
	return caller, ok
}
