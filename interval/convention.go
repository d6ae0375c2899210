package interval

import (
	"context"

	"github.com/jsphweid/harmonia/knowledge"
)

// Convention decides how an interval spanning an exact number of octaves is
// classified. With OctaveIsSimple unset (the zero value) a P8 reduces to a
// unison and counts as one octave; with it set a P8 stays an octave and
// counts as none. Only exact multiples of an octave are affected.
type Convention struct {
	OctaveIsSimple bool
}

// octaves is the number of whole octaves in an upward span of steps.
func (c Convention) octaves(steps int) int {
	n := steps / 7
	if c.OctaveIsSimple && steps > 0 && steps%7 == 0 {
		n--
	}
	return n
}

// Octaves counts the whole octaves an interval contains.
func (c Convention) Octaves(i Interval) int {
	u, _ := i.up()
	return c.octaves(u.Steps)
}

// SimpleUp strips whole octaves and returns the upward simple interval.
func (c Convention) SimpleUp(i Interval) Interval {
	u, _ := i.up()
	n := c.octaves(u.Steps)
	return New(u.Steps-7*n, u.Semitones-12*n)
}

// Simple strips whole octaves and keeps the direction.
func (c Convention) Simple(i Interval) Interval {
	_, sign := i.up()
	s := c.SimpleUp(i)
	return Interval{Coord: s.Coord.Scale(sign)}
}

// Base names the diatonic class of the interval, ignoring quality.
func (c Convention) Base(i Interval) string {
	return knowledge.IntervalNames[c.SimpleUp(i).Coord.Steps]
}

type conventionKey struct{}

// NewContext returns a context carrying c, for callers that classify
// intervals deep inside request handling.
func NewContext(ctx context.Context, c Convention) context.Context {
	return context.WithValue(ctx, conventionKey{}, c)
}

// FromContext returns the convention stored in ctx, or the zero Convention.
func FromContext(ctx context.Context) Convention {
	c, _ := ctx.Value(conventionKey{}).(Convention)
	return c
}
