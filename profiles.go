package exeq

import (
	"context"
	"time"

	"github.com/exeq-dev/exeq-go/generated/client/apikey"
)

// ListProfiles returns all profiles visible to the API key, in server
// order. The result is never nil.
func (c *Client) ListProfiles(ctx context.Context) (_ []*Profile, err error) {
	defer func(start time.Time) { c.logCall("ListProfiles", start, err) }(time.Now())

	params := apikey.NewV1ProfilesGetParamsWithContext(ctx).
		WithTimeout(c.timeout)

	resp, err := c.api.V1ProfilesGet(params, c.auth)
	if err != nil {
		return nil, c.handleError(err, "failed to list profiles")
	}

	return mapProfiles(resp.GetPayload())
}

// GetProfile returns the profile with the given ID.
func (c *Client) GetProfile(ctx context.Context, id string) (_ *Profile, err error) {
	defer func(start time.Time) { c.logCall("GetProfile", start, err) }(time.Now())

	if id == "" {
		return nil, newError("BAD_REQUEST", "profile ID is required", 400, nil)
	}

	params := apikey.NewV1ProfilesIDGetParamsWithContext(ctx).
		WithTimeout(c.timeout).
		WithID(id)

	resp, err := c.api.V1ProfilesIDGet(params, c.auth)
	if err != nil {
		return nil, c.handleError(err, "failed to get profile")
	}

	return mapProfile(resp.GetPayload())
}
