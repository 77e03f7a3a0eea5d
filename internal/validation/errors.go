package validation

import "errors"

// InvalidInputError is returned whenever a request or an intermediate value
// fails validation. The message identifies the exact check that failed.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return e.Message
}

// NewInvalidInputError creates a new invalid input error
func NewInvalidInputError(message string) *InvalidInputError {
	return &InvalidInputError{
		Message: message,
	}
}

// AsInvalidInput returns the InvalidInputError in err's chain, if any.
func AsInvalidInput(err error) (*InvalidInputError, bool) {
	var invalidInputErr *InvalidInputError
	if errors.As(err, &invalidInputErr) {
		return invalidInputErr, true
	}
	return nil, false
}

// IsInvalidInput reports whether err, or anything it wraps, is an InvalidInputError.
func IsInvalidInput(err error) bool {
	_, ok := AsInvalidInput(err)
	return ok
}

const (
	MsgInvalidRequest   = "Invalid request"
	MsgInvalidEventBody = "No or invalid body specified"

	MsgInvalidBody                   = "Invalid body specified"
	MsgInvalidDevice                 = "Invalid device specified in the request"
	MsgInvalidDeviceCoordinates      = "Invalid device coordinates specified in the request"
	MsgInvalidDeviceX                = "Invalid x device coordinate specified in the request"
	MsgInvalidDeviceY                = "Invalid y device coordinate specified in the request"
	MsgInvalidLinkStationsList       = "No valid link stations list specified in the request"
	MsgInvalidLinkStation            = "Invalid link station specified in the request"
	MsgInvalidLinkStationCoordinates = "Invalid link station coordinates specified in the request"
	MsgInvalidLinkStationX           = "Invalid x link station coordinate specified in the request"
	MsgInvalidLinkStationY           = "Invalid y link station coordinate specified in the request"
	MsgInvalidLinkStationReach       = "Invalid link station reach specified in the request"

	MsgInvalidLinkStations = "Invalid link stations specified"
	MsgInvalidDistance     = "Invalid distance specified"
	MsgInvalidReach        = "Invalid reach specified"
	MsgInvalidFinding      = "Invalid most suitable link station specified"
)
