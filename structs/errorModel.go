package structs

// Error kinds used across services. Controllers map these onto HTTP status
// codes, everything not classified below counts as a storage failure.
const (
	ErrNotFound         = "not_found"
	ErrInvalidReference = "invalid_reference"
	ErrValidation       = "validation_error"
	ErrStorageFailure   = "storage_failure"
)

type ErrorModel struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func (e *ErrorModel) Error() string {
	return e.Message
}

func NewError(kind, message string) *ErrorModel {
	return &ErrorModel{Kind: kind, Message: message}
}

// KindOf classifies an error returned by a service. Unknown errors are
// reported as storage failures.
func KindOf(err error) string {
	if e, ok := err.(*ErrorModel); ok {
		return e.Kind
	}
	return ErrStorageFailure
}
