package errorx

type ErrorType string

// Errors status code are defined here:
// https://chromium.googlesource.com/external/github.com/grpc/grpc/+/refs/tags/v1.21.4-pre1/doc/statuscodes.md

const (
	// The Unspecified type should not be used, only useful to assert whether or not an error is a CliniaError during cast
	ErrorTypeUnspecified     = ErrorType("")
	ErrorTypeInvalidArgument = ErrorType("INVALID_ARGUMENT")
)

func (e ErrorType) String() string {
	return string(e)
}
