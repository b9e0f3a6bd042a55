package types

import "errors"

// Permission types name the device capability an async action needs.
// PermissionNone is for actions that record without a user-facing permission.
const (
	PermissionMotion     = "motion"
	PermissionLocation   = "location"
	PermissionMicrophone = "microphone"
	PermissionCamera     = "camera"
	PermissionHeartRate  = "heartrate"
	PermissionNone       = "none"
)

// validPermissionTypes is the set of recognized permission type values.
var validPermissionTypes = map[string]bool{
	PermissionMotion:     true,
	PermissionLocation:   true,
	PermissionMicrophone: true,
	PermissionCamera:     true,
	PermissionHeartRate:  true,
	PermissionNone:       true,
}

// IsValidPermissionType reports whether the given string is a recognized
// permission type.
func IsValidPermissionType(pt string) bool {
	return validPermissionTypes[pt]
}

// Async action errors.
var (
	ErrInvalidActionType = errors.New("unknown permission type")
	ErrActionNotFound    = errors.New("async action not found")
	ErrInvalidWindow     = errors.New("stop step precedes start step")
)

// AsyncActionConfiguration declares a background data-collection module and
// the slice of the task during which it records. It is a passive value:
// decoding and window resolution happen here, actual recording is the job of
// a runner outside this module.
//
// An empty StartStepIdentifier means the action starts with the first step;
// an empty StopStepIdentifier means it runs until the task ends.
type AsyncActionConfiguration struct {
	Identifier          string `json:"identifier" yaml:"identifier"`
	Type                string `json:"type" yaml:"type"`
	StartStepIdentifier string `json:"start_step_identifier,omitempty" yaml:"start_step_identifier,omitempty"`
	StopStepIdentifier  string `json:"stop_step_identifier,omitempty" yaml:"stop_step_identifier,omitempty"`
}

// Validate checks that the configuration is well-formed. Step references are
// checked against the owning task by Task.Validate, not here.
func (a AsyncActionConfiguration) Validate() error {
	if a.Identifier == "" {
		return ErrIdentifierEmpty
	}
	if !validPermissionTypes[a.Type] {
		return ErrInvalidActionType
	}
	return nil
}
