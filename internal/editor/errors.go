package editor

import (
	"errors"
	"fmt"

	"CurveBoard/internal/state"
)

var (
	// ErrBufferFull is reported when a point is placed while the drawing
	// buffer already holds a complete curve.
	ErrBufferFull  = errors.New("drawing buffer is full")
	ErrUnknownTool = errors.New("unknown tool")
)

// OverflowError carries the details of a rejected click.
type OverflowError struct {
	Count  int
	Degree state.Degree
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("you already have %d points for a %s curve", e.Count, e.Degree)
}

func (e *OverflowError) Unwrap() error { return ErrBufferFull }
