package grid

// constError is an immutable error type for sentinel errors.
// It implements the error interface and provides compile-time safety.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors for grid operations. All of them are recoverable:
// the core has no fatal error path and never leaves state inconsistent.
// Compare with errors.Is().
var (
	// ErrNoSelection is returned when a batch delete is requested with
	// nothing selected. The operation is a no-op; callers typically
	// surface it as a user-visible message.
	ErrNoSelection = constError("no rows selected")

	// ErrRowNotFound indicates a referenced identity or sequence index
	// is not present in the store. In a batch removal it reports the
	// missing identities without aborting the rest of the batch.
	ErrRowNotFound = constError("row not found")

	// ErrPageSizeInvalid indicates a non-positive page size.
	ErrPageSizeInvalid = constError("page size must be positive")
)
