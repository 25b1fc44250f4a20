package sim

import "errors"

// Sentinel errors for invalid input. Wrapped with context via fmt.Errorf("%w: ...")
// at the call site; callers match them with errors.Is.
var (
	ErrEmptyGraph      = errors.New("sim: graph has no nodes")
	ErrUnknownSource   = errors.New("sim: source node not in graph")
	ErrNodeOutOfRange  = errors.New("sim: node id out of range")
	ErrNegativeWeight  = errors.New("sim: edge weight must be non-negative")
	ErrInvalidScale    = errors.New("sim: scale factor must be positive")
	ErrInvalidDemand   = errors.New("sim: delivery demand must be non-negative")
	ErrInvalidCapacity = errors.New("sim: truck capacity must be non-negative")
	ErrInvalidSpeed    = errors.New("sim: average speed must be positive")
	ErrInvalidScenario = errors.New("sim: scenario counts must be positive")
	ErrUnknownVariant  = errors.New("sim: unknown engine variant")
)
