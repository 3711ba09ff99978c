package exeq

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-openapi/runtime"
	httptransport "github.com/go-openapi/runtime/client"
	"github.com/go-openapi/strfmt"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/exeq-dev/exeq-go/generated/client"
	"github.com/exeq-dev/exeq-go/generated/client/apikey"
	"github.com/exeq-dev/exeq-go/generated/models"
)

// DefaultBaseURL is the production exeq endpoint.
const DefaultBaseURL = "https://api.exeq.dev"

const defaultTimeout = 30 * time.Second

// maxErrorBodySize limits how much of an error response body is read.
const maxErrorBodySize = 4096

// API is the part of the generated endpoint client that [Client] calls.
//
// The generated apikey.ClientService satisfies it. Tests can supply their
// own implementation through [WithAPI].
type API interface {
	V1SessionsPost(params *apikey.V1SessionsPostParams, authInfo runtime.ClientAuthInfoWriter, opts ...apikey.ClientOption) (*apikey.V1SessionsPostOK, error)
	V1SessionsGet(params *apikey.V1SessionsGetParams, authInfo runtime.ClientAuthInfoWriter, opts ...apikey.ClientOption) (*apikey.V1SessionsGetOK, error)
	V1SessionsIDGet(params *apikey.V1SessionsIDGetParams, authInfo runtime.ClientAuthInfoWriter, opts ...apikey.ClientOption) (*apikey.V1SessionsIDGetOK, error)
	V1SessionsIDDelete(params *apikey.V1SessionsIDDeleteParams, authInfo runtime.ClientAuthInfoWriter, opts ...apikey.ClientOption) (*apikey.V1SessionsIDDeleteOK, *apikey.V1SessionsIDDeleteNoContent, error)
	V1SessionsIDExtendPost(params *apikey.V1SessionsIDExtendPostParams, authInfo runtime.ClientAuthInfoWriter, opts ...apikey.ClientOption) (*apikey.V1SessionsIDExtendPostOK, error)
	V1ProfilesGet(params *apikey.V1ProfilesGetParams, authInfo runtime.ClientAuthInfoWriter, opts ...apikey.ClientOption) (*apikey.V1ProfilesGetOK, error)
	V1ProfilesIDGet(params *apikey.V1ProfilesIDGetParams, authInfo runtime.ClientAuthInfoWriter, opts ...apikey.ClientOption) (*apikey.V1ProfilesIDGetOK, error)
}

var _ API = (*apikey.Client)(nil)

// Client is the exeq API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
	logger     zerolog.Logger

	api  API
	auth runtime.ClientAuthInfoWriter
}

// clientConfig is the validated view of the constructor input.
type clientConfig struct {
	APIKey  string        `validate:"required"`
	BaseURL string        `validate:"required,http_url"`
	Timeout time.Duration `validate:"gte=0"`
}

var configValidator = validator.New(validator.WithRequiredStructEnabled())

// NewClient creates a new exeq client authenticated with apiKey.
//
// It returns an error with code "CONFIGURATION" when apiKey is empty or the
// base URL is not an absolute http(s) URL. No request is made.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	c := &Client{
		apiKey:    apiKey,
		baseURL:   DefaultBaseURL,
		timeout:   defaultTimeout,
		userAgent: "exeq-go/" + Version,
		logger:    zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.validateConfig(); err != nil {
		return nil, err
	}

	c.auth = httptransport.Compose(
		httptransport.BearerToken(c.apiKey),
		userAgentWriter(c.userAgent),
	)

	if c.api == nil {
		transport, err := c.newTransport()
		if err != nil {
			return nil, err
		}
		c.api = client.New(transport, strfmt.Default).Apikey
	}

	return c, nil
}

// BaseURL returns the endpoint the client sends requests to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) validateConfig() error {
	cfg := clientConfig{
		APIKey:  strings.TrimSpace(c.apiKey),
		BaseURL: c.baseURL,
		Timeout: c.timeout,
	}
	err := configValidator.Struct(cfg)
	if err == nil {
		return checkBaseURL(c.baseURL)
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return newError("CONFIGURATION", "invalid client configuration", 0, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Field() {
		case "APIKey":
			msgs = append(msgs, "api key is required")
		case "BaseURL":
			msgs = append(msgs, "base URL must be an absolute http(s) URL")
		case "Timeout":
			msgs = append(msgs, "timeout must not be negative")
		default:
			msgs = append(msgs, fe.Error())
		}
	}
	return newError("CONFIGURATION", strings.Join(msgs, "; "), 0, err)
}

// checkBaseURL rejects parts of the base URL that the transport would
// silently drop.
func checkBaseURL(baseURL string) error {
	u, err := url.Parse(baseURL)
	if err != nil {
		return newError("CONFIGURATION", "invalid base URL", 0, err)
	}
	if u.RawQuery != "" || u.ForceQuery || u.Fragment != "" {
		return newError("CONFIGURATION", "base URL must not contain a query or fragment", 0, nil)
	}
	return nil
}

// newTransport builds the go-openapi runtime for the configured base URL.
func (c *Client) newTransport() (runtime.ClientTransport, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, newError("CONFIGURATION", "invalid base URL", 0, err)
	}

	basePath := u.Path
	if basePath == "" {
		basePath = "/"
	}

	rt := httptransport.NewWithClient(u.Host, basePath, []string{u.Scheme}, c.httpClient)
	for mediaType, consumer := range rt.Consumers {
		rt.Consumers[mediaType] = errorPayloadConsumer(consumer)
	}
	rt.Consumers["*/*"] = errorPayloadConsumer(runtime.TextConsumer())
	return rt, nil
}

// userAgentWriter sets the User-Agent header alongside authentication.
func userAgentWriter(userAgent string) runtime.ClientAuthInfoWriter {
	return runtime.ClientAuthInfoWriterFunc(func(r runtime.ClientRequest, _ strfmt.Registry) error {
		return r.SetHeaderParam("User-Agent", userAgent)
	})
}

// errorPayloadConsumer decodes error bodies without ever failing, so a
// non-2xx response always keeps its status. Bodies that are not an exeq
// error object (gateway HTML, plain text, malformed JSON) become the
// message verbatim, up to maxErrorBodySize. Other payloads go to next.
func errorPayloadConsumer(next runtime.Consumer) runtime.Consumer {
	return runtime.ConsumerFunc(func(r io.Reader, data any) error {
		payload, ok := data.(*models.InternalServerPublicErrorResponse)
		if !ok {
			return next.Consume(r, data)
		}
		body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
		if err != nil {
			return err
		}
		var decoded models.InternalServerPublicErrorResponse
		if err := json.Unmarshal(body, &decoded); err == nil {
			*payload = decoded
			return nil
		}
		payload.Error = strings.TrimSpace(string(body))
		return nil
	})
}

// logCall emits one debug event per API call. The API key is never logged.
func (c *Client) logCall(operation string, start time.Time, err error) {
	event := c.logger.Debug()
	if err != nil {
		event = event.Err(err)
	}
	event.
		Str("operation", operation).
		Dur("duration", time.Since(start)).
		Msg("exeq api call")
}
