package art

import "github.com/pkg/errors"

// Sentinel errors returned by Table operations. Callers should compare
// against these with errors.Is, since they may be wrapped with
// additional context.
var (
	// ErrOutOfMemory is returned by Insert when a subtable allocation
	// fails. The route is not inserted; subtables that the same call
	// had already linked in at shallower levels stay in the table.
	ErrOutOfMemory = errors.New("art: out of memory")

	// ErrDestroyed is returned by any operation on a Table after
	// Destroy has been called on it.
	ErrDestroyed = errors.New("art: table destroyed")

	// ErrInvalidConfig is returned by New when a Config fails
	// validation.
	ErrInvalidConfig = errors.New("art: invalid config")

	// ErrInvalidPrefix is returned when a caller passes a destination
	// address or prefix length outside the table's configured bounds.
	ErrInvalidPrefix = errors.New("art: invalid prefix")
)
