package datastruct

import "go.llib.dev/frameless/pkg/errorkit"

const (
	// ErrInvalidArgument is returned when a constructor receives a value it can't work with,
	// such as a negative capacity.
	ErrInvalidArgument errorkit.Error = "ErrInvalidArgument"
	// ErrIndexOutOfBounds is returned when a positional operation receives an index outside of its valid range.
	ErrIndexOutOfBounds errorkit.Error = "ErrIndexOutOfBounds"
	// ErrConcurrentModification is raised by an iterator when the list was structurally modified during the iteration.
	ErrConcurrentModification errorkit.Error = "ErrConcurrentModification"
)
