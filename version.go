package exeq

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Version is the current SDK version.
//
// This version follows semantic versioning (https://semver.org/).
// The version is incremented according to the following rules:
//   - MAJOR: Breaking changes to the public API
//   - MINOR: New features, backwards compatible
//   - PATCH: Bug fixes, backwards compatible
const Version = "0.1.0"

// APIVersion is the exeq API version this SDK was built for.
const APIVersion = "1.2.0"

// APIVersionRange is the semver constraint of server versions this SDK
// is expected to work with.
const APIVersionRange = ">=1.0.0, <2.0.0"

// CompatibilityStatus describes how a server version relates to
// [APIVersionRange].
type CompatibilityStatus int

const (
	// Unknown means the server version could not be parsed.
	Unknown CompatibilityStatus = iota
	// Compatible means the server version is inside the supported range.
	Compatible
	// Incompatible means the server version is outside the supported range.
	Incompatible
)

func (s CompatibilityStatus) String() string {
	switch s {
	case Compatible:
		return "compatible"
	case Incompatible:
		return "incompatible"
	default:
		return "unknown"
	}
}

// CompatibilityResult is the outcome of [CheckCompatibility].
type CompatibilityResult struct {
	Status           CompatibilityStatus
	ServerVersion    string
	SDKVersion       string
	TargetAPIVersion string
	SupportedRange   string
	Message          string
}

// IsCompatible returns true if Status is [Compatible].
func (r CompatibilityResult) IsCompatible() bool {
	return r.Status == Compatible
}

// CheckCompatibility compares a server version against [APIVersionRange].
//
// Pre-release and build metadata are ignored, so "1.3.0-rc.1" is treated
// as "1.3.0".
func CheckCompatibility(serverVersion string) CompatibilityResult {
	result := CompatibilityResult{
		ServerVersion:    serverVersion,
		SDKVersion:       Version,
		TargetAPIVersion: APIVersion,
		SupportedRange:   APIVersionRange,
	}

	v, err := semver.NewVersion(serverVersion)
	if err != nil {
		result.Status = Unknown
		result.Message = fmt.Sprintf("cannot parse server version %q: %v", serverVersion, err)
		return result
	}

	core := semver.New(v.Major(), v.Minor(), v.Patch(), "", "")
	if apiConstraint.Check(core) {
		result.Status = Compatible
		result.Message = fmt.Sprintf("server version %s is compatible with SDK %s", serverVersion, Version)
	} else {
		result.Status = Incompatible
		result.Message = fmt.Sprintf("server version %s is not compatible with SDK %s (supported: %s)",
			serverVersion, Version, APIVersionRange)
	}
	return result
}

// IsCompatible reports whether serverVersion is inside [APIVersionRange].
func IsCompatible(serverVersion string) bool {
	return CheckCompatibility(serverVersion).IsCompatible()
}

// MustBeCompatible panics unless serverVersion is inside [APIVersionRange].
func MustBeCompatible(serverVersion string) {
	if result := CheckCompatibility(serverVersion); !result.IsCompatible() {
		panic("exeq: " + result.Message)
	}
}

var apiConstraint = mustConstraint(APIVersionRange)

func mustConstraint(c string) *semver.Constraints {
	constraint, err := semver.NewConstraint(c)
	if err != nil {
		panic(err)
	}
	return constraint
}
