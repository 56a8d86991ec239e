package puzzle

import (
	"errors"
	"fmt"
)

// Sentinel errors for board construction and replay.
var (
	// ErrBadSize indicates a side length outside [MinSize, MaxSize].
	ErrBadSize = errors.New("puzzle: board size out of range")

	// ErrBadTiles indicates the tiles are not a permutation of 0..n*n-1.
	ErrBadTiles = errors.New("puzzle: tiles must be a permutation of 0..n*n-1")

	// ErrIllegalMove indicates a move that would push the blank off the board.
	ErrIllegalMove = errors.New("puzzle: illegal move")

	// ErrSizeMismatch indicates two boards of different sizes were combined.
	ErrSizeMismatch = errors.New("puzzle: board sizes differ")
)

const (
	// MinSize is the smallest supported side length.
	MinSize = 2
	// MaxSize is the largest supported side length.
	MaxSize = 4
	// Blank is the value of the empty square.
	Blank = 0
)

// Board is an n×n arrangement of tiles stored row-major. It is a comparable
// value and can be used as a map key.
type Board struct {
	n     int8
	tiles [MaxSize * MaxSize]int8
}

// Move is the direction the blank travels.
type Move int8

const (
	// Idle is the zero action carried by root nodes.
	Idle Move = iota
	Up
	Down
	Right
	Left
)

// Reverse returns the move that undoes m.
func (m Move) Reverse() Move {
	switch m {
	case Up:
		return Down
	case Down:
		return Up
	case Right:
		return Left
	case Left:
		return Right
	default:
		return Idle
	}
}

// String returns the upper-case move name.
func (m Move) String() string {
	switch m {
	case Idle:
		return "IDLE"
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	case Right:
		return "RIGHT"
	case Left:
		return "LEFT"
	default:
		return fmt.Sprintf("Move(%d)", int8(m))
	}
}

// delta returns the (row, col) offset of the blank for m.
func (m Move) delta() (int, int) {
	switch m {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Right:
		return 0, 1
	case Left:
		return 0, -1
	default:
		return 0, 0
	}
}

// expansionOrder is the order in which Successors tries moves.
var expansionOrder = [...]Move{Down, Up, Right, Left}
