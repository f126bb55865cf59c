package search

import (
	"fmt"

	"github.com/katalvlaran/mazegraph/core"
)

// Sentinel errors for search and replay.
var (
	// ErrNilGraph indicates a nil graph.
	ErrNilGraph = fmt.Errorf("%w: search: nil graph", core.ErrInvalidArgument)
	// ErrNilWorklist indicates a nil worklist or trail.
	ErrNilWorklist = fmt.Errorf("%w: search: nil worklist", core.ErrInvalidArgument)
	// ErrUnknownEndpoint indicates an origin or target outside the graph.
	ErrUnknownEndpoint = fmt.Errorf("%w: search: endpoint not in graph", core.ErrInvalidArgument)

	// ErrSearchComplete indicates IncrementSearch after the target was found.
	ErrSearchComplete = fmt.Errorf("%w: search: search already complete", core.ErrInvalidState)
	// ErrReconstructionComplete indicates a reconstruction step after the
	// walk reached the origin, or a replay step on an empty trail.
	ErrReconstructionComplete = fmt.Errorf("%w: search: reconstruction already complete", core.ErrInvalidState)
	// ErrReconstructionImpossible indicates reconstruction was attempted from a
	// vertex that has no recorded predecessor, typically before search completed.
	ErrReconstructionImpossible = fmt.Errorf("%w: search: no predecessor recorded", core.ErrInvalidState)

	// ErrTargetUnreachable indicates the worklist ran dry before the target
	// was discovered. A perfect maze never does this.
	ErrTargetUnreachable = fmt.Errorf("%w: search: target unreachable", core.ErrTopologyViolation)
)
