// Package rctx carries per-request state through the rule engine and
// services: the caller's context, the active database transaction, and the
// locale for user-facing message rendering.
//
// The transaction handle is threaded explicitly so that every write a service
// performs during one request lands in the same transaction. It is never
// stored in a global or smuggled through context values.
package rctx

import (
	"context"
	"database/sql"
)

// DefaultLocale is used when the caller does not specify one.
const DefaultLocale = "en"

// Context is the request context passed explicitly through services and
// repositories. A nil transaction is valid for pure evaluation paths that
// never touch storage.
type Context struct {
	ctx    context.Context
	tx     *sql.Tx
	locale string
}

// New builds a request context. ctx must not be nil; tx may be nil for
// read-only evaluation that does not reach the database.
func New(ctx context.Context, tx *sql.Tx, locale string) *Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if locale == "" {
		locale = DefaultLocale
	}
	return &Context{ctx: ctx, tx: tx, locale: locale}
}

// Background returns a transaction-less request context for evaluation-only
// call paths and tests.
func Background() *Context {
	return New(context.Background(), nil, DefaultLocale)
}

// Context returns the underlying context for cancellation and deadlines.
func (c *Context) Context() context.Context { return c.ctx }

// Tx returns the active transaction, or nil if the request is not
// transactional.
func (c *Context) Tx() *sql.Tx { return c.tx }

// Locale returns the request locale.
func (c *Context) Locale() string { return c.locale }
