package exeq

import (
	"testing"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exeq-dev/exeq-go/generated/models"
)

func wireSession() *models.InternalServerPublicSession {
	created := strfmt.DateTime(time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC))
	return &models.InternalServerPublicSession{
		ID:          swag.String("sess-1"),
		Status:      swag.String("active"),
		CdpURL:      swag.String("wss://cdp"),
		VncURL:      swag.String("wss://vnc"),
		VncPassword: swag.String("pw"),
		CreatedAt:   &created,
	}
}

func TestMapSession_AllFields(t *testing.T) {
	wire := wireSession()
	expires := strfmt.DateTime(time.Date(2025, 1, 15, 11, 30, 0, 0, time.UTC))
	wire.ExpiresAt = &expires
	wire.SessionRecordingEnabled = swag.Bool(true)
	wire.SessionRecordingURL = swag.String("https://rec")
	wire.ResidentialProxyEnabled = swag.Bool(false)

	s, err := mapSession(wire)

	require.NoError(t, err)
	assert.Equal(t, "sess-1", s.ID)
	assert.Equal(t, SessionStatusActive, s.Status)
	assert.Equal(t, "wss://cdp", s.CDPURL)
	assert.Equal(t, "wss://vnc", s.VNCURL)
	assert.Equal(t, "pw", s.VNCPassword)
	assert.Equal(t, time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC), s.CreatedAt)
	require.NotNil(t, s.ExpiresAt)
	assert.Equal(t, time.Date(2025, 1, 15, 11, 30, 0, 0, time.UTC), *s.ExpiresAt)
	assert.Equal(t, true, *s.SessionRecordingEnabled)
	assert.Equal(t, "https://rec", *s.SessionRecordingURL)
	assert.Equal(t, false, *s.ResidentialProxyEnabled)

	// The result must not alias the wire model.
	*wire.SessionRecordingURL = "changed"
	assert.Equal(t, "https://rec", *s.SessionRecordingURL)
}

func TestMapSession_OptionalFieldsAbsent(t *testing.T) {
	s, err := mapSession(wireSession())

	require.NoError(t, err)
	assert.Nil(t, s.ExpiresAt)
	assert.Nil(t, s.SessionRecordingEnabled)
	assert.Nil(t, s.SessionRecordingURL)
	assert.Nil(t, s.ResidentialProxyEnabled)
}

func TestMapSession_EmptyStringsPreserved(t *testing.T) {
	wire := wireSession()
	wire.VncPassword = swag.String("")

	s, err := mapSession(wire)

	require.NoError(t, err)
	assert.Equal(t, "", s.VNCPassword)
}

func TestMapSession_MissingMandatoryField(t *testing.T) {
	tests := []struct {
		field string
		clear func(*models.InternalServerPublicSession)
	}{
		{"id", func(m *models.InternalServerPublicSession) { m.ID = nil }},
		{"status", func(m *models.InternalServerPublicSession) { m.Status = nil }},
		{"cdpUrl", func(m *models.InternalServerPublicSession) { m.CdpURL = nil }},
		{"vncUrl", func(m *models.InternalServerPublicSession) { m.VncURL = nil }},
		{"vncPassword", func(m *models.InternalServerPublicSession) { m.VncPassword = nil }},
		{"createdAt", func(m *models.InternalServerPublicSession) { m.CreatedAt = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			wire := wireSession()
			tt.clear(wire)

			s, err := mapSession(wire)

			require.Error(t, err)
			assert.Nil(t, s)
			var mappingErr *MappingError
			require.ErrorAs(t, err, &mappingErr)
			assert.Equal(t, "Session", mappingErr.Type)
			assert.Equal(t, []string{tt.field}, mappingErr.Fields)
		})
	}
}

func TestMapSession_MultipleMissingFields(t *testing.T) {
	wire := wireSession()
	wire.ID = nil
	wire.VncURL = nil

	_, err := mapSession(wire)

	var mappingErr *MappingError
	require.ErrorAs(t, err, &mappingErr)
	assert.ElementsMatch(t, []string{"id", "vncUrl"}, mappingErr.Fields)
}

func TestMapSession_UnknownStatus(t *testing.T) {
	wire := wireSession()
	wire.Status = swag.String("hibernating")

	_, err := mapSession(wire)

	var mappingErr *MappingError
	require.ErrorAs(t, err, &mappingErr)
	assert.Equal(t, []string{"status"}, mappingErr.Fields)
}

func TestMapSession_Nil(t *testing.T) {
	_, err := mapSession(nil)

	var mappingErr *MappingError
	require.ErrorAs(t, err, &mappingErr)
	assert.ErrorIs(t, err, errMissingPayload)
}

func TestMapSessions_NullEntry(t *testing.T) {
	list := &models.InternalServerPublicSessionList{
		Sessions: []*models.InternalServerPublicSession{wireSession(), nil},
	}

	_, err := mapSessions(list)

	var mappingErr *MappingError
	require.ErrorAs(t, err, &mappingErr)
	assert.Equal(t, []string{"sessions.1"}, mappingErr.Fields)
}

func TestMapSessions_Empty(t *testing.T) {
	for _, list := range []*models.InternalServerPublicSessionList{
		nil,
		{},
		{Sessions: []*models.InternalServerPublicSession{}},
	} {
		sessions, err := mapSessions(list)

		require.NoError(t, err)
		assert.NotNil(t, sessions)
		assert.Empty(t, sessions)
	}
}

func TestMapProfile_MissingFields(t *testing.T) {
	_, err := mapProfile(&models.InternalServerPublicProfile{ID: swag.String("p")})

	var mappingErr *MappingError
	require.ErrorAs(t, err, &mappingErr)
	assert.Equal(t, "Profile", mappingErr.Type)
	assert.ElementsMatch(t, []string{"name", "createdAt"}, mappingErr.Fields)
}

func TestMapProfiles_PrefixesItemFields(t *testing.T) {
	created := strfmt.DateTime(time.Now())
	list := &models.InternalServerPublicProfileList{
		Profiles: []*models.InternalServerPublicProfile{
			{ID: swag.String("p1"), Name: swag.String("a"), CreatedAt: &created},
			{ID: swag.String("p2"), CreatedAt: &created},
		},
	}

	_, err := mapProfiles(list)

	var mappingErr *MappingError
	require.ErrorAs(t, err, &mappingErr)
	assert.Equal(t, []string{"profiles.1.name"}, mappingErr.Fields)
}

func TestCreateSessionOptions_ToWire(t *testing.T) {
	assert.Equal(t, &models.InternalServerPublicCreateSessionRequest{}, (*CreateSessionOptions)(nil).toWire())
	assert.Equal(t, &models.InternalServerPublicCreateSessionRequest{}, (&CreateSessionOptions{}).toWire())

	wire := (&CreateSessionOptions{
		Duration:                "10m",
		SessionRecordingEnabled: Bool(false),
		ResidentialProxyCity:    "Paris",
	}).toWire()

	assert.Equal(t, "10m", *wire.Duration)
	assert.Equal(t, false, *wire.SessionRecordingEnabled)
	assert.Equal(t, "Paris", *wire.ResidentialProxyCity)
	assert.Nil(t, wire.ProfileID)
	assert.Nil(t, wire.ResidentialProxyEnabled)
	assert.Nil(t, wire.ResidentialProxyCountry)
	assert.Nil(t, wire.ResidentialProxyState)
}
