package exeq

import (
	"context"
	"time"

	"github.com/go-openapi/swag"

	"github.com/exeq-dev/exeq-go/generated/client/apikey"
	"github.com/exeq-dev/exeq-go/generated/models"
)

// CreateSession starts a new browser session.
//
// A nil opts creates a session with server defaults. Only the fields set in
// opts are sent:
//
//	session, err := client.CreateSession(ctx, &exeq.CreateSessionOptions{
//	    Duration:                "1h",
//	    SessionRecordingEnabled: exeq.Bool(true),
//	})
func (c *Client) CreateSession(ctx context.Context, opts *CreateSessionOptions) (_ *Session, err error) {
	defer func(start time.Time) { c.logCall("CreateSession", start, err) }(time.Now())

	params := apikey.NewV1SessionsPostParamsWithContext(ctx).
		WithTimeout(c.timeout).
		WithRequest(opts.toWire())

	resp, err := c.api.V1SessionsPost(params, c.auth)
	if err != nil {
		return nil, c.handleError(err, "failed to create session")
	}

	return mapSession(resp.GetPayload())
}

// GetSession returns the session with the given ID.
//
// A session that does not exist yields an error matching [ErrNotFound].
func (c *Client) GetSession(ctx context.Context, id string) (_ *Session, err error) {
	defer func(start time.Time) { c.logCall("GetSession", start, err) }(time.Now())

	if id == "" {
		return nil, newError("BAD_REQUEST", "session ID is required", 400, nil)
	}

	params := apikey.NewV1SessionsIDGetParamsWithContext(ctx).
		WithTimeout(c.timeout).
		WithID(id)

	resp, err := c.api.V1SessionsIDGet(params, c.auth)
	if err != nil {
		return nil, c.handleError(err, "failed to get session")
	}

	return mapSession(resp.GetPayload())
}

// ListSessions returns sessions in the order the server reports them.
//
// A nil opts lists with server defaults. The result is never nil; a response
// without a sessions collection yields an empty slice.
//
//	page, err := client.ListSessions(ctx, &exeq.ListSessionsOptions{
//	    Limit:  exeq.Int(20),
//	    Offset: exeq.Int(40),
//	})
func (c *Client) ListSessions(ctx context.Context, opts *ListSessionsOptions) (_ []*Session, err error) {
	defer func(start time.Time) { c.logCall("ListSessions", start, err) }(time.Now())

	params := apikey.NewV1SessionsGetParamsWithContext(ctx).
		WithTimeout(c.timeout)
	if opts != nil {
		params.SetLimit(optionalInt64(opts.Limit))
		params.SetOffset(optionalInt64(opts.Offset))
	}

	resp, err := c.api.V1SessionsGet(params, c.auth)
	if err != nil {
		return nil, c.handleError(err, "failed to list sessions")
	}

	return mapSessions(resp.GetPayload())
}

// StopSession asks the server to stop a session.
//
// Whether stopping an already stopped session succeeds is up to the
// server; the call is not retried.
func (c *Client) StopSession(ctx context.Context, id string) (err error) {
	defer func(start time.Time) { c.logCall("StopSession", start, err) }(time.Now())

	if id == "" {
		return newError("BAD_REQUEST", "session ID is required", 400, nil)
	}

	params := apikey.NewV1SessionsIDDeleteParamsWithContext(ctx).
		WithTimeout(c.timeout).
		WithID(id)

	if _, _, err := c.api.V1SessionsIDDelete(params, c.auth); err != nil {
		return c.handleError(err, "failed to stop session")
	}
	return nil
}

// ExtendSession extends a running session by duration and returns the
// updated session. Duration is passed to the server unparsed, for
// example "30m".
func (c *Client) ExtendSession(ctx context.Context, id, duration string) (_ *Session, err error) {
	defer func(start time.Time) { c.logCall("ExtendSession", start, err) }(time.Now())

	if id == "" {
		return nil, newError("BAD_REQUEST", "session ID is required", 400, nil)
	}

	params := apikey.NewV1SessionsIDExtendPostParamsWithContext(ctx).
		WithTimeout(c.timeout).
		WithID(id).
		WithRequest(&models.InternalServerPublicExtendSessionRequest{
			Duration: swag.String(duration),
		})

	resp, err := c.api.V1SessionsIDExtendPost(params, c.auth)
	if err != nil {
		return nil, c.handleError(err, "failed to extend session")
	}

	return mapSession(resp.GetPayload())
}
