package errors

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	MalformedDocument Kind = iota + 1
	MissingOrInvalidField
	OutOfRangeNumeric
	NonNumericField
	DestinationCountViolation
	DateParseFailure
	StayDurationViolation
	StartDateTooEarly
	RoomCompositionViolation
	MissingOrInvalidCredentials
	MissingMarkup
)

func (k Kind) String() string {
	switch k {
	case MalformedDocument:
		return "MalformedDocument"
	case MissingOrInvalidField:
		return "MissingOrInvalidField"
	case OutOfRangeNumeric:
		return "OutOfRangeNumeric"
	case NonNumericField:
		return "NonNumericField"
	case DestinationCountViolation:
		return "DestinationCountViolation"
	case DateParseFailure:
		return "DateParseFailure"
	case StayDurationViolation:
		return "StayDurationViolation"
	case StartDateTooEarly:
		return "StartDateTooEarly"
	case RoomCompositionViolation:
		return "RoomCompositionViolation"
	case MissingOrInvalidCredentials:
		return "MissingOrInvalidCredentials"
	case MissingMarkup:
		return "MissingMarkup"
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

const codeBadRequest = 400

// Fault is a validation or parsing failure which aborts the request. It is
// rendered to the partner as an application error document.
type Fault struct {
	Kind       Kind
	Message    string
	Code       int
	HTTPStatus int
	Err        error
}

func (f *Fault) Error() string {
	return f.Message
}

func (f *Fault) Unwrap() error {
	return f.Err
}

func New(kind Kind, format string, args ...any) *Fault {
	return &Fault{
		Kind:       kind,
		Message:    fmt.Sprintf(format, args...),
		HTTPStatus: http.StatusInternalServerError,
	}
}

// NewBadRequest creates a fault answered with 400, used for unparsable input.
func NewBadRequest(kind Kind, err error, format string, args ...any) *Fault {
	return &Fault{
		Kind:       kind,
		Message:    fmt.Sprintf(format, args...),
		Code:       codeBadRequest,
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

// AsFault extracts the first fault from the error chain.
func AsFault(err error) (*Fault, bool) {
	var fault *Fault
	if errors.As(err, &fault) {
		return fault, true
	}

	return nil, false
}

func IsKind(err error, kind Kind) bool {
	fault, ok := AsFault(err)
	return ok && fault.Kind == kind
}
