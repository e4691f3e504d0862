package handler

import (
	"context"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// Context is the per-request value handlers receive. It is the request's
// context.Context, so values installed by middleware (the session accessor,
// the request id) are read through it directly.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter

	// SSE is non-nil only for DataStar requests.
	SSE() *datastar.ServerSentEventGenerator
}

// NewContext binds w and r. The SSE generator is created on first use so
// handlers can still set cookies before the stream starts.
func NewContext(w http.ResponseWriter, r *http.Request) Context {
	return &httpContext{Context: r.Context(), w: w, r: r}
}

type httpContext struct {
	context.Context

	w   http.ResponseWriter
	r   *http.Request
	sse *datastar.ServerSentEventGenerator
}

func (c *httpContext) Request() *http.Request              { return c.r }
func (c *httpContext) ResponseWriter() http.ResponseWriter { return c.w }

func (c *httpContext) SSE() *datastar.ServerSentEventGenerator {
	if c.sse == nil && IsDataStar(c.r) {
		c.sse = datastar.NewSSE(c.w, c.r)
	}
	return c.sse
}
