package vecdist

import (
	"errors"
	"fmt"

	"github.com/hupe1980/vecdist/distance"
)

var (
	// ErrUnsupportedMetric is returned when no kernel family serves a metric.
	ErrUnsupportedMetric = distance.ErrUnsupportedMetric
	// ErrUnsupportedElementType is returned for an unknown element type.
	ErrUnsupportedElementType = distance.ErrUnsupportedElementType
	// ErrUnsupportedLevel is returned for an unknown capability level name.
	ErrUnsupportedLevel = distance.ErrUnsupportedLevel
	// ErrInvalidDimension is returned for a negative dimension.
	ErrInvalidDimension = errors.New("invalid dimension")
)

// ErrBufferTooSmall indicates a vector buffer shorter than dim elements.
type ErrBufferTooSmall struct {
	ElementType distance.ElementType
	Dimension   int
	// Need is the required length in bytes.
	Need int
	// Got is the shorter of the two buffer lengths.
	Got int
}

func (e *ErrBufferTooSmall) Error() string {
	return fmt.Sprintf("buffer too small: %d-dimensional %s vector needs %d bytes, got %d",
		e.Dimension, e.ElementType, e.Need, e.Got)
}
