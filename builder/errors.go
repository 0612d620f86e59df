package builder

import "errors"

// ErrEmptyMap indicates a text map with no rows or an empty first row.
var ErrEmptyMap = errors.New("builder: map is empty")

// ErrRaggedMap indicates text map rows of differing lengths.
var ErrRaggedMap = errors.New("builder: map rows differ in length")

// ErrUnknownSymbol indicates a map rune outside '.', '#', 'S', 'E'.
var ErrUnknownSymbol = errors.New("builder: unknown map symbol")

// ErrDuplicateEndpoint indicates more than one 'S' or more than one 'E'.
var ErrDuplicateEndpoint = errors.New("builder: start or end given more than once")

// ErrInvalidDensity indicates a barrier density outside [0,1).
var ErrInvalidDensity = errors.New("builder: density out of range")

// ErrOutOfBounds indicates coordinates outside the grid.
var ErrOutOfBounds = errors.New("builder: coordinates out of bounds")

// ErrNotAxisAligned indicates a wall whose ends share neither row nor column.
var ErrNotAxisAligned = errors.New("builder: wall is not axis-aligned")
