package Trees

import "errors"

var (
	// ErrOffEnd is returned when dereferencing or advancing an off-end iterator.
	ErrOffEnd = errors.New("iterator is off-end")
	// ErrBeforeBegin is returned when moving an iterator before the first element.
	ErrBeforeBegin = errors.New("iterator is at the first element")
	// ErrStale is returned when the node an iterator refers to was removed or overwritten.
	ErrStale = errors.New("iterator refers to a removed node")
	// ErrForeign is returned when an iterator is handed to a tree that didn't produce it.
	ErrForeign = errors.New("iterator belongs to another tree")
	// ErrAxis is panicked when a fixed axis is not below the number of dimensions.
	ErrAxis = errors.New("axis out of range")
	// ErrZeroDims is panicked when a tree is configured with less than one dimension.
	ErrZeroDims = errors.New("key must have at least one dimension")
	// ErrCapacity is panicked when the index type S can't address another node.
	ErrCapacity = errors.New("index type exhausted")
)
