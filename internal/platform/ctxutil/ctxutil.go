// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxutil provides helpers for interacting with values stored in [context.Context].
//
// Three values travel with a request: the correlation ID, the request-scoped
// logger, and the actor (the verified token claims of the viewer, curator or
// admin making the call). Anonymous reference reads carry no actor.
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/taibuivan/folio/internal/platform/ctxkey"
	"github.com/taibuivan/folio/internal/platform/sec"
)

// # Request Tracing

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID retrieves the request ID from the context, or "".
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger retrieves the request logger, falling back to [slog.Default].
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}

// # Actor

// WithActor attaches the verified claims and tags the request logger with
// the actor, so every later log line of the request names who made it.
func WithActor(ctx context.Context, actor *sec.AuthClaims) context.Context {
	ctx = context.WithValue(ctx, ctxkey.KeyActor, actor)
	if actor == nil {
		return ctx
	}

	logger := GetLogger(ctx).With(
		slog.String("actor", ActorName(actor)),
		slog.String("role", actor.Role),
	)
	return WithLogger(ctx, logger)
}

// GetActor retrieves the [*sec.AuthClaims] from the context, or nil for
// anonymous requests.
func GetActor(ctx context.Context) *sec.AuthClaims {
	actor, _ := ctx.Value(ctxkey.KeyActor).(*sec.AuthClaims)
	return actor
}

// ActorName is the display name recorded in logs: the username when the
// token carries one, otherwise the subject ID.
func ActorName(actor *sec.AuthClaims) string {
	switch {
	case actor == nil:
		return "anonymous"
	case actor.Username != "":
		return actor.Username
	default:
		return actor.UserID
	}
}
