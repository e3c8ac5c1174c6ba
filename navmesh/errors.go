package navmesh

import "errors"

var (
	// ErrInvalidTriangle reports an out-of-range or repeated vertex index or
	// a degenerate (collinear) triangle at mesh construction.
	ErrInvalidTriangle = errors.New("navmesh: invalid triangle")

	// ErrPointOutsideMesh reports that a query point could not be snapped
	// onto any triangle, including the empty-mesh case.
	ErrPointOutsideMesh = errors.New("navmesh: point outside mesh")

	// ErrNoPath reports that the triangle adjacency graph holds no route
	// between the snapped endpoints.
	ErrNoPath = errors.New("navmesh: no path")
)
