package gridworld

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridworld construction.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridworld: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridworld: all rows must have the same length")
	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("gridworld: cell out of bounds")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell is a grid coordinate; it is the search state of this domain.
type Cell struct {
	X, Y int
}

// Direction is the action of moving to a neighboring cell.
type Direction int8

const (
	None Direction = iota
	North
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var directionNames = [...]string{"NONE", "N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// offsets holds (dx, dy) per Direction; y grows southwards.
var offsets = [...][2]int{
	None:      {0, 0},
	North:     {0, -1},
	NorthEast: {1, -1},
	East:      {1, 0},
	SouthEast: {1, 1},
	South:     {0, 1},
	SouthWest: {-1, 1},
	West:      {-1, 0},
	NorthWest: {-1, -1},
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == None || !d.valid() {
		return None
	}

	return (d+3)%8 + 1
}

// String returns the compass abbreviation.
func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return fmt.Sprintf("Direction(%d)", int8(d))
	}

	return directionNames[d]
}

// valid reports whether d is one of None..NorthWest.
func (d Direction) valid() bool { return d >= None && d <= NorthWest }

// diagonal reports whether d changes both coordinates.
func (d Direction) diagonal() bool {
	o := offsets[d]

	return o[0] != 0 && o[1] != 0
}

// Options contains tunable parameters for a Grid.
type Options struct {
	// WallBelow is the smallest value of an open cell.
	WallBelow int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultOptions returns Options with WallBelow=1 and Conn=Conn4.
func DefaultOptions() Options {
	return Options{
		WallBelow: 1,
		Conn:      Conn4,
	}
}
