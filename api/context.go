package api

import (
	"context"
	"errors"
)

type keyType string

const (
	sessionIDKey keyType = "sessionID"
	sessionKey   keyType = "session"
)

// ctxWithSession adds a live session and its id to the context
func ctxWithSession(ctx context.Context, id string, s *liveSession) context.Context {
	ctx = context.WithValue(ctx, sessionIDKey, id)
	return context.WithValue(ctx, sessionKey, s)
}

// ctxGetSessionID retrieves the session id from the context
func ctxGetSessionID(ctx context.Context) (string, error) {
	if ctxValue := ctx.Value(sessionIDKey); ctxValue == nil {
		return "", errors.New("key not found in context")
	} else if valueAsString, ok := ctxValue.(string); !ok {
		return "", errors.New("value is not of type `string`")
	} else {
		return valueAsString, nil
	}
}

// ctxGetSession retrieves the live session from the context
func ctxGetSession(ctx context.Context) (*liveSession, error) {
	if ctxValue := ctx.Value(sessionKey); ctxValue == nil {
		return nil, errors.New("key not found in context")
	} else if s, ok := ctxValue.(*liveSession); !ok {
		return nil, errors.New("value is not of type `*liveSession`")
	} else {
		return s, nil
	}
}
