package exeq_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exeq-dev/exeq-go"
)

const testAPIKey = "test-key"

// mustEncode encodes v as JSON and writes it to w.
// Panics on error - safe in tests since errors indicate test bugs.
func mustEncode(w http.ResponseWriter, v interface{}) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		panic("failed to encode response: " + err.Error())
	}
}

// mustDecode decodes JSON from r.Body into v.
// Panics on error - safe in tests since errors indicate test bugs.
func mustDecode(r *http.Request, v interface{}) {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		panic("failed to decode request: " + err.Error())
	}
}

// writeJSON writes v with an explicit JSON content type and status.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	mustEncode(w, v)
}

// sessionJSON returns a complete wire session with the given ID.
func sessionJSON(id string) map[string]interface{} {
	return map[string]interface{}{
		"id":          id,
		"status":      "active",
		"cdpUrl":      "wss://cdp.exeq.dev/" + id,
		"vncUrl":      "wss://vnc.exeq.dev/" + id,
		"vncPassword": "secret",
		"createdAt":   "2025-01-15T10:30:00Z",
	}
}

func newTestClient(t *testing.T, serverURL string, opts ...exeq.Option) *exeq.Client {
	t.Helper()
	client, err := exeq.NewClient(testAPIKey, append([]exeq.Option{exeq.WithBaseURL(serverURL)}, opts...)...)
	require.NoError(t, err)
	return client
}

// ----------------------------------------------------------------------------
// Construction
// ----------------------------------------------------------------------------

// TestNewClient_DefaultBaseURL tests that the production endpoint is used
// when no base URL is given.
func TestNewClient_DefaultBaseURL(t *testing.T) {
	client, err := exeq.NewClient("k1")

	require.NoError(t, err)
	assert.Equal(t, "https://api.exeq.dev", client.BaseURL())
	assert.Equal(t, exeq.DefaultBaseURL, client.BaseURL())
}

// TestNewClient_MissingAPIKey tests that an empty API key is rejected
// before any request is made.
func TestNewClient_MissingAPIKey(t *testing.T) {
	for _, key := range []string{"", "   "} {
		client, err := exeq.NewClient(key)

		require.Error(t, err)
		assert.Nil(t, client)
		assert.ErrorIs(t, err, exeq.ErrConfiguration)
		assert.Contains(t, err.Error(), "api key is required")
	}
}

// TestNewClient_InvalidBaseURL tests base URL validation.
func TestNewClient_InvalidBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
	}{
		{"empty", ""},
		{"missing scheme", "api.exeq.dev"},
		{"unsupported scheme", "ftp://api.exeq.dev"},
		{"not a url", "://"},
		{"query", "https://api.exeq.dev?region=eu"},
		{"empty query", "https://api.exeq.dev/?"},
		{"fragment", "https://api.exeq.dev#v1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := exeq.NewClient(testAPIKey, exeq.WithBaseURL(tt.baseURL))

			require.Error(t, err)
			assert.Nil(t, client)

			var apiErr *exeq.Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, "CONFIGURATION", apiErr.Code)
		})
	}
}

// TestNewClient_NegativeTimeout tests that a negative timeout is rejected.
func TestNewClient_NegativeTimeout(t *testing.T) {
	_, err := exeq.NewClient(testAPIKey, exeq.WithTimeout(-time.Second))

	require.Error(t, err)
	assert.ErrorIs(t, err, exeq.ErrConfiguration)
}

// TestNewClient_NoNetwork tests that construction does not contact the server.
func TestNewClient_NoNetwork(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	_, err := exeq.NewClient(testAPIKey, exeq.WithBaseURL(server.URL))

	require.NoError(t, err)
	assert.Equal(t, 0, calls)
}

// TestClient_Headers tests that every request carries the API key and
// user agent.
func TestClient_Headers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer "+testAPIKey, r.Header.Get("Authorization"))
		assert.Equal(t, "my-agent/2.0", r.Header.Get("User-Agent"))
		writeJSON(w, http.StatusOK, map[string]interface{}{"profiles": []interface{}{}})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, exeq.WithUserAgent("my-agent/2.0"))
	_, err := client.ListProfiles(context.Background())

	require.NoError(t, err)
}

// TestClient_BasePathPrefix tests that a path in the base URL prefixes
// every endpoint.
func TestClient_BasePathPrefix(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/sessions/sess-1", r.URL.Path)
		writeJSON(w, http.StatusOK, sessionJSON("sess-1"))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL+"/api")
	_, err := client.GetSession(context.Background(), "sess-1")

	require.NoError(t, err)
}

// ----------------------------------------------------------------------------
// Session Method Tests
// ----------------------------------------------------------------------------

// TestCreateSession_OnlySetFields tests that only the provided option is
// sent on the wire.
func TestCreateSession_OnlySetFields(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/sessions", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req map[string]interface{}
		mustDecode(r, &req)
		assert.Equal(t, map[string]interface{}{"sessionRecordingEnabled": true}, req)

		resp := sessionJSON("sess-new")
		resp["sessionRecordingEnabled"] = true
		writeJSON(w, http.StatusOK, resp)
	}))
	defer server.Close()

	// Act
	client := newTestClient(t, server.URL)
	session, err := client.CreateSession(context.Background(), &exeq.CreateSessionOptions{
		SessionRecordingEnabled: exeq.Bool(true),
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "sess-new", session.ID)
	require.NotNil(t, session.SessionRecordingEnabled)
	assert.True(t, *session.SessionRecordingEnabled)
}

// TestCreateSession_AllFields tests that every option is forwarded
// unmodified, including explicit false values.
func TestCreateSession_AllFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]interface{}
		mustDecode(r, &req)

		assert.Equal(t, map[string]interface{}{
			"duration":                "45m",
			"sessionRecordingEnabled": false,
			"profileId":               "prof-1",
			"residentialProxyEnabled": true,
			"residentialProxyCountry": "US",
			"residentialProxyState":   "CA",
			"residentialProxyCity":    "San Francisco",
		}, req)

		writeJSON(w, http.StatusOK, sessionJSON("sess-all"))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.CreateSession(context.Background(), &exeq.CreateSessionOptions{
		Duration:                "45m",
		SessionRecordingEnabled: exeq.Bool(false),
		ProfileID:               "prof-1",
		ResidentialProxyEnabled: exeq.Bool(true),
		ResidentialProxyCountry: "US",
		ResidentialProxyState:   "CA",
		ResidentialProxyCity:    "San Francisco",
	})

	require.NoError(t, err)
}

// TestCreateSession_NilOptions tests that nil options send an empty object.
func TestCreateSession_NilOptions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]interface{}
		mustDecode(r, &req)
		assert.Empty(t, req)

		writeJSON(w, http.StatusOK, sessionJSON("sess-default"))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	session, err := client.CreateSession(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, "sess-default", session.ID)
}

// TestCreateSession_EmptyStringsOmitted tests that empty string options
// never reach the wire, even alongside set ones.
func TestCreateSession_EmptyStringsOmitted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]interface{}
		mustDecode(r, &req)
		assert.Equal(t, map[string]interface{}{"residentialProxyEnabled": false}, req)

		writeJSON(w, http.StatusOK, sessionJSON("sess-new"))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.CreateSession(context.Background(), &exeq.CreateSessionOptions{
		Duration:                "",
		ProfileID:               "",
		ResidentialProxyEnabled: exeq.Bool(false),
		ResidentialProxyCountry: "",
		ResidentialProxyState:   "",
		ResidentialProxyCity:    "",
	})

	require.NoError(t, err)
}

// TestCreateSession_SuccessStatuses tests that any 2xx carrying a session
// is a success, not only 200.
func TestCreateSession_SuccessStatuses(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"ok", http.StatusOK},
		{"created", http.StatusCreated},
		{"accepted", http.StatusAccepted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				writeJSON(w, tt.status, sessionJSON("sess-new"))
			}))
			defer server.Close()

			client := newTestClient(t, server.URL)

			// Act
			session, err := client.CreateSession(context.Background(), &exeq.CreateSessionOptions{Duration: "5m"})

			// Assert
			require.NoError(t, err)
			assert.Equal(t, "sess-new", session.ID)
			assert.Equal(t, exeq.SessionStatusActive, session.Status)
		})
	}
}

// TestGetSession_Success tests the full mapping of a session response.
func TestGetSession_Success(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/sessions/sess-abc123", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)

		resp := sessionJSON("sess-abc123")
		resp["expiresAt"] = "2025-01-15T11:30:00Z"
		resp["sessionRecordingUrl"] = "https://recordings.exeq.dev/sess-abc123"
		resp["residentialProxyEnabled"] = false
		writeJSON(w, http.StatusOK, resp)
	}))
	defer server.Close()

	// Act
	client := newTestClient(t, server.URL)
	session, err := client.GetSession(context.Background(), "sess-abc123")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "sess-abc123", session.ID)
	assert.Equal(t, exeq.SessionStatusActive, session.Status)
	assert.True(t, session.IsActive())
	assert.False(t, session.IsTerminal())
	assert.Equal(t, "wss://cdp.exeq.dev/sess-abc123", session.CDPURL)
	assert.Equal(t, "wss://vnc.exeq.dev/sess-abc123", session.VNCURL)
	assert.Equal(t, "secret", session.VNCPassword)
	assert.True(t, session.CreatedAt.Equal(time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)))
	require.True(t, session.HasExpiry())
	assert.True(t, session.ExpiresAt.Equal(time.Date(2025, 1, 15, 11, 30, 0, 0, time.UTC)))
	require.NotNil(t, session.SessionRecordingURL)
	assert.Equal(t, "https://recordings.exeq.dev/sess-abc123", *session.SessionRecordingURL)
	require.NotNil(t, session.ResidentialProxyEnabled)
	assert.False(t, *session.ResidentialProxyEnabled)
	assert.Nil(t, session.SessionRecordingEnabled)
}

// TestGetSession_NullableFieldsAbsent tests that missing nullable fields
// map to nil.
func TestGetSession_NullableFieldsAbsent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := sessionJSON("sess-1")
		resp["expiresAt"] = nil
		writeJSON(w, http.StatusOK, resp)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	session, err := client.GetSession(context.Background(), "sess-1")

	require.NoError(t, err)
	assert.Nil(t, session.ExpiresAt)
	assert.False(t, session.HasExpiry())
	assert.Nil(t, session.SessionRecordingURL)
}

// TestGetSession_NotFound tests that a 404 surfaces with its status and
// server message.
func TestGetSession_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	session, err := client.GetSession(context.Background(), "missing-id")

	require.Error(t, err)
	assert.Nil(t, session)
	assert.ErrorIs(t, err, exeq.ErrNotFound)

	var apiErr *exeq.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "NOT_FOUND", apiErr.Code)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "session not found", apiErr.Message)
}

// TestGetSession_PlainTextError tests that non-JSON error bodies keep
// their status and text.
func TestGetSession_PlainTextError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.GetSession(context.Background(), "sess-1")

	var apiErr *exeq.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "INTERNAL", apiErr.Code)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "upstream unavailable", apiErr.Message)
}

// TestGetSession_SuccessStatuses tests that a non-200 2xx still decodes
// the session.
func TestGetSession_SuccessStatuses(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusCreated, http.StatusNonAuthoritativeInfo} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, status, sessionJSON("sess-1"))
			}))
			defer server.Close()

			client := newTestClient(t, server.URL)
			session, err := client.GetSession(context.Background(), "sess-1")

			require.NoError(t, err)
			assert.Equal(t, "sess-1", session.ID)
		})
	}
}

// TestGetSession_ErrorBodies tests that error responses keep their status
// whatever the body or content type.
func TestGetSession_ErrorBodies(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		contentType string
		body        string
		wantCode    string
		wantMessage string
	}{
		{
			name:        "html 404",
			status:      http.StatusNotFound,
			contentType: "text/html; charset=utf-8",
			body:        "<html><body><h1>404 Not Found</h1></body></html>",
			wantCode:    "NOT_FOUND",
			wantMessage: "<html><body><h1>404 Not Found</h1></body></html>",
		},
		{
			name:        "html labelled as json",
			status:      http.StatusBadGateway,
			contentType: "application/json",
			body:        "<html>bad gateway</html>",
			wantCode:    "INTERNAL",
			wantMessage: "<html>bad gateway</html>",
		},
		{
			name:        "truncated json",
			status:      http.StatusBadGateway,
			contentType: "application/json",
			body:        `{"error":`,
			wantCode:    "INTERNAL",
			wantMessage: `{"error":`,
		},
		{
			name:        "error field of wrong type",
			status:      http.StatusInternalServerError,
			contentType: "application/json",
			body:        `{"error":123}`,
			wantCode:    "INTERNAL",
			wantMessage: `{"error":123}`,
		},
		{
			name:        "unknown content type",
			status:      http.StatusTeapot,
			contentType: "application/problem+json",
			body:        `{"error":"short and stout"}`,
			wantCode:    "API_ERROR",
			wantMessage: "short and stout",
		},
		{
			name:        "empty body",
			status:      http.StatusServiceUnavailable,
			wantCode:    "INTERNAL",
			wantMessage: "Service Unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.contentType != "" {
					w.Header().Set("Content-Type", tt.contentType)
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := newTestClient(t, server.URL)

			// Act
			session, err := client.GetSession(context.Background(), "sess-1")

			// Assert
			require.Error(t, err)
			assert.Nil(t, session)

			var mappingErr *exeq.MappingError
			assert.False(t, errors.As(err, &mappingErr), "unexpected mapping error: %v", err)

			var apiErr *exeq.Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.wantCode, apiErr.Code)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
		})
	}
}

// TestGetSession_Unauthorized tests that a 401 maps to ErrUnauthorized.
func TestGetSession_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid api key"})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.GetSession(context.Background(), "sess-1")

	assert.ErrorIs(t, err, exeq.ErrUnauthorized)
}

// TestGetSession_EmptyID tests that an empty ID fails without a request.
func TestGetSession_EmptyID(t *testing.T) {
	client := newTestClient(t, "http://localhost:8585")

	session, err := client.GetSession(context.Background(), "")

	require.Error(t, err)
	assert.Nil(t, session)

	var apiErr *exeq.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "BAD_REQUEST", apiErr.Code)
}

// TestGetSession_MissingRequiredField tests that an incomplete session is
// rejected rather than returned partially filled.
func TestGetSession_MissingRequiredField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := sessionJSON("sess-1")
		delete(resp, "cdpUrl")
		writeJSON(w, http.StatusOK, resp)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	session, err := client.GetSession(context.Background(), "sess-1")

	require.Error(t, err)
	assert.Nil(t, session)

	var mappingErr *exeq.MappingError
	require.ErrorAs(t, err, &mappingErr)
	assert.Equal(t, "Session", mappingErr.Type)
	assert.Equal(t, []string{"cdpUrl"}, mappingErr.Fields)
}

// TestGetSession_ContextCancellation tests that context cancellation is
// reported as a transport failure.
func TestGetSession_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := newTestClient(t, server.URL)
	session, err := client.GetSession(ctx, "sess-1")

	require.Error(t, err)
	assert.Nil(t, session)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, exeq.ErrRequestFailed)
}

// TestListSessions_Pagination tests that limit and offset are passed
// through and an empty collection yields an empty slice.
func TestListSessions_Pagination(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/sessions", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "0", r.URL.Query().Get("offset"))

		writeJSON(w, http.StatusOK, map[string]interface{}{"sessions": []interface{}{}})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	sessions, err := client.ListSessions(context.Background(), &exeq.ListSessionsOptions{
		Limit:  exeq.Int(10),
		Offset: exeq.Int(0),
	})

	require.NoError(t, err)
	assert.NotNil(t, sessions)
	assert.Empty(t, sessions)
}

// TestListSessions_Order tests that server order is preserved and unset
// pagination is not sent.
func TestListSessions_Order(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"sessions": []interface{}{sessionJSON("sess-3"), sessionJSON("sess-1"), sessionJSON("sess-2")},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	sessions, err := client.ListSessions(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, sessions, 3)
	assert.Equal(t, "sess-3", sessions[0].ID)
	assert.Equal(t, "sess-1", sessions[1].ID)
	assert.Equal(t, "sess-2", sessions[2].ID)
}

// TestListSessions_AbsentCollection tests that a response without the
// sessions field is an empty list, not an error.
func TestListSessions_AbsentCollection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	sessions, err := client.ListSessions(context.Background(), nil)

	require.NoError(t, err)
	assert.NotNil(t, sessions)
	assert.Empty(t, sessions)
}

// TestListSessions_MalformedCollection tests that a sessions field that
// is not an array fails with a MappingError.
func TestListSessions_MalformedCollection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{"sessions": "oops"})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	sessions, err := client.ListSessions(context.Background(), nil)

	require.Error(t, err)
	assert.Nil(t, sessions)

	var mappingErr *exeq.MappingError
	require.ErrorAs(t, err, &mappingErr)
	assert.Equal(t, "SessionList", mappingErr.Type)
	assert.Equal(t, []string{"sessions"}, mappingErr.Fields)
	assert.Contains(t, err.Error(), "invalid SessionList in response")
}

// TestListSessions_InvalidItem tests that one incomplete session fails
// the whole list.
func TestListSessions_InvalidItem(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		broken := sessionJSON("sess-2")
		delete(broken, "vncPassword")
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"sessions": []interface{}{sessionJSON("sess-1"), broken},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	sessions, err := client.ListSessions(context.Background(), nil)

	require.Error(t, err)
	assert.Nil(t, sessions)

	var mappingErr *exeq.MappingError
	require.ErrorAs(t, err, &mappingErr)
	assert.Equal(t, []string{"sessions.1.vncPassword"}, mappingErr.Fields)
}

// TestStopSession_Success tests stopping a session.
func TestStopSession_Success(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusNoContent} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/sessions/sess-abc123", r.URL.Path)
			assert.Equal(t, http.MethodDelete, r.Method)
			w.WriteHeader(status)
		}))

		client := newTestClient(t, server.URL)
		err := client.StopSession(context.Background(), "sess-abc123")

		assert.NoError(t, err, "status %d", status)
		server.Close()
	}
}

// TestStopSession_ServerError tests that a 500 is returned unchanged and
// not retried.
func TestStopSession_ServerError(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls++
		mu.Unlock()
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	err := client.StopSession(context.Background(), "sess-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, exeq.ErrInternal)
	assert.Equal(t, 1, calls)
}

// TestStopSession_EmptyID tests that an empty ID fails without a request.
func TestStopSession_EmptyID(t *testing.T) {
	client := newTestClient(t, "http://localhost:8585")

	err := client.StopSession(context.Background(), "")

	assert.ErrorIs(t, err, exeq.ErrBadRequest)
}

// TestExtendSession_SendsDuration tests that the duration is sent verbatim.
func TestExtendSession_SendsDuration(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/sessions/sess-1/extend", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req map[string]interface{}
		mustDecode(r, &req)
		assert.Equal(t, map[string]interface{}{"duration": "30m"}, req)

		resp := sessionJSON("sess-1")
		resp["expiresAt"] = "2025-01-15T12:00:00Z"
		writeJSON(w, http.StatusOK, resp)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	session, err := client.ExtendSession(context.Background(), "sess-1", "30m")

	require.NoError(t, err)
	require.NotNil(t, session.ExpiresAt)
	assert.True(t, session.ExpiresAt.Equal(time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)))
}

// TestExtendSession_BadDuration tests that server-side rejection of a
// duration surfaces as BAD_REQUEST.
func TestExtendSession_BadDuration(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid duration"})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	session, err := client.ExtendSession(context.Background(), "sess-1", "forever")

	require.Error(t, err)
	assert.Nil(t, session)
	assert.ErrorIs(t, err, exeq.ErrBadRequest)
	assert.Contains(t, err.Error(), "invalid duration")
}

// ----------------------------------------------------------------------------
// Profile Method Tests
// ----------------------------------------------------------------------------

// TestListProfiles_Success tests listing profiles.
func TestListProfiles_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/profiles", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"profiles": []map[string]interface{}{
				{"id": "prof-1", "name": "default", "createdAt": "2025-01-01T00:00:00Z"},
				{"id": "prof-2", "name": "logged-in", "createdAt": "2025-01-02T00:00:00Z"},
			},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	profiles, err := client.ListProfiles(context.Background())

	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "prof-1", profiles[0].ID)
	assert.Equal(t, "default", profiles[0].Name)
	assert.Equal(t, "logged-in", profiles[1].Name)
	assert.True(t, profiles[1].CreatedAt.Equal(time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)))
}

// TestListProfiles_AbsentCollection tests that a missing profiles field
// is an empty list.
func TestListProfiles_AbsentCollection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	profiles, err := client.ListProfiles(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, profiles)
	assert.Empty(t, profiles)
}

// TestGetProfile_Success tests fetching a single profile.
func TestGetProfile_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/profiles/prof-1", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"id": "prof-1", "name": "default", "createdAt": "2025-01-01T00:00:00Z",
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	profile, err := client.GetProfile(context.Background(), "prof-1")

	require.NoError(t, err)
	assert.Equal(t, "prof-1", profile.ID)
	assert.Equal(t, "default", profile.Name)
}

// TestGetProfile_NotFound tests that a missing profile maps to ErrNotFound.
func TestGetProfile_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "profile not found"})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	profile, err := client.GetProfile(context.Background(), "nope")

	require.Error(t, err)
	assert.Nil(t, profile)
	assert.True(t, errors.Is(err, exeq.ErrNotFound))
}

// TestGetProfile_MissingName tests that a profile without a name is rejected.
func TestGetProfile_MissingName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"id": "prof-1", "createdAt": "2025-01-01T00:00:00Z",
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	profile, err := client.GetProfile(context.Background(), "prof-1")

	require.Error(t, err)
	assert.Nil(t, profile)

	var mappingErr *exeq.MappingError
	require.ErrorAs(t, err, &mappingErr)
	assert.Equal(t, "Profile", mappingErr.Type)
	assert.Equal(t, []string{"name"}, mappingErr.Fields)
}

// TestClient_ConcurrentUse tests that a single client can serve parallel
// calls.
func TestClient_ConcurrentUse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, sessionJSON("sess-1"))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.GetSession(context.Background(), "sess-1")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}
