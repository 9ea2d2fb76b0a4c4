package hopf

import "errors"

var (
	// ErrInvalidConfig is returned for resolutions or radii that cannot
	// produce a closed tube.
	ErrInvalidConfig = errors.New("invalid fibration config")

	// ErrDegenerateGeometry is returned when sampled geometry is not finite.
	ErrDegenerateGeometry = errors.New("degenerate geometry")

	// ErrDanglingIndex is returned by Validate for an index past the vertex count.
	ErrDanglingIndex = errors.New("index out of range")

	// ErrNonFinite is returned by Validate for a NaN or infinite coordinate.
	ErrNonFinite = errors.New("non-finite vertex")
)
