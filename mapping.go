package exeq

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"

	"github.com/exeq-dev/exeq-go/generated/models"
)

var errMissingPayload = errors.New("missing payload")

// mapSession converts a wire session into a Session. The generated model
// validation decides what counts as missing; nothing is defaulted.
func mapSession(wire *models.InternalServerPublicSession) (*Session, error) {
	if wire == nil {
		return nil, &MappingError{Type: "Session", Cause: errMissingPayload}
	}
	if err := wire.Validate(strfmt.Default); err != nil {
		return nil, newMappingError("Session", err)
	}

	return &Session{
		ID:                      *wire.ID,
		Status:                  SessionStatus(*wire.Status),
		CDPURL:                  *wire.CdpURL,
		VNCURL:                  *wire.VncURL,
		VNCPassword:             *wire.VncPassword,
		ExpiresAt:               dateTime(wire.ExpiresAt),
		CreatedAt:               time.Time(*wire.CreatedAt),
		SessionRecordingEnabled: clonePtr(wire.SessionRecordingEnabled),
		SessionRecordingURL:     clonePtr(wire.SessionRecordingURL),
		ResidentialProxyEnabled: clonePtr(wire.ResidentialProxyEnabled),
	}, nil
}

// mapProfile converts a wire profile into a Profile.
func mapProfile(wire *models.InternalServerPublicProfile) (*Profile, error) {
	if wire == nil {
		return nil, &MappingError{Type: "Profile", Cause: errMissingPayload}
	}
	if err := wire.Validate(strfmt.Default); err != nil {
		return nil, newMappingError("Profile", err)
	}

	return &Profile{
		ID:        *wire.ID,
		Name:      *wire.Name,
		CreatedAt: time.Time(*wire.CreatedAt),
	}, nil
}

// mapSessions maps a session list. An absent collection is an empty list;
// a null entry or an invalid session fails the whole list.
func mapSessions(list *models.InternalServerPublicSessionList) ([]*Session, error) {
	if list == nil || list.Sessions == nil {
		return []*Session{}, nil
	}
	sessions := make([]*Session, 0, len(list.Sessions))
	for i, wire := range list.Sessions {
		session, err := mapSession(wire)
		if err != nil {
			return nil, prefixFields(err, "sessions."+strconv.Itoa(i))
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}

// mapProfiles maps a profile list with the same rules as mapSessions.
func mapProfiles(list *models.InternalServerPublicProfileList) ([]*Profile, error) {
	if list == nil || list.Profiles == nil {
		return []*Profile{}, nil
	}
	profiles := make([]*Profile, 0, len(list.Profiles))
	for i, wire := range list.Profiles {
		profile, err := mapProfile(wire)
		if err != nil {
			return nil, prefixFields(err, "profiles."+strconv.Itoa(i))
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

// prefixFields qualifies the field names of a list item's MappingError
// with the item's position.
func prefixFields(err error, prefix string) error {
	var mappingErr *MappingError
	if !errors.As(err, &mappingErr) {
		return err
	}
	fields := make([]string, 0, len(mappingErr.Fields))
	for _, f := range mappingErr.Fields {
		fields = append(fields, prefix+"."+f)
	}
	if len(fields) == 0 {
		fields = []string{prefix}
	}
	return &MappingError{Type: mappingErr.Type, Fields: fields, Cause: mappingErr.Cause}
}

func dateTime(dt *strfmt.DateTime) *time.Time {
	if dt == nil {
		return nil
	}
	t := time.Time(*dt)
	return &t
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// optionalString leaves empty option strings out of the request body.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return swag.String(s)
}

func optionalInt64(v *int) *int64 {
	if v == nil {
		return nil
	}
	return swag.Int64(int64(*v))
}

func (o *CreateSessionOptions) toWire() *models.InternalServerPublicCreateSessionRequest {
	if o == nil {
		return &models.InternalServerPublicCreateSessionRequest{}
	}
	return &models.InternalServerPublicCreateSessionRequest{
		Duration:                optionalString(o.Duration),
		SessionRecordingEnabled: clonePtr(o.SessionRecordingEnabled),
		ProfileID:               optionalString(o.ProfileID),
		ResidentialProxyEnabled: clonePtr(o.ResidentialProxyEnabled),
		ResidentialProxyCountry: optionalString(o.ResidentialProxyCountry),
		ResidentialProxyState:   optionalString(o.ResidentialProxyState),
		ResidentialProxyCity:    optionalString(o.ResidentialProxyCity),
	}
}
