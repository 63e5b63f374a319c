package errs

// ErrorKind identifies a kind of internal error.
// fully support for errors.Is and errors.As.
type ErrorKind string

const (
	// SomethingWentWrong is returned for unexpected failures that should never reach a caller as-is.
	SomethingWentWrong = ErrorKind("Something went wrong")

	// NotFound is returned when a requested item is not found.
	NotFound = ErrorKind("Not Found")

	// InvalidArgument is returned when an argument is invalid.
	InvalidArgument = ErrorKind("Invalid Argument")

	// Malformed is returned when input bytes can't be decoded into the expected structure.
	Malformed = ErrorKind("Malformed Input")

	// Unsupported is returned when a feature or result is not supported.
	Unsupported = ErrorKind("Unsupported")

	// ConflictSetting is returned when persisted state conflicts with the current configuration.
	ConflictSetting = ErrorKind("Conflict Setting")

	// Timeout is returned when an operation didn't finish in time.
	Timeout = ErrorKind("Timeout")

	OverflowUint64  = ErrorKind("overflow uint64")
	OverflowUint128 = ErrorKind("overflow uint128")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}
