// Package feeder provides the pull-style byte source capability that the
// actson parser pulls input from. A Feeder never blocks; it's the caller's
// job to keep it supplied and to drive refills however it sees fit.
package feeder

// Feeder is the sole seam between the parser engine and the outside world.
// Implementations must be monotone: once IsDone reports true it must keep
// reporting true, and NextInput must keep returning (0, false).
type Feeder interface {
	// HasInput reports whether a byte is immediately available.
	HasInput() bool

	// IsDone reports whether the producer has declared end of input and
	// the feeder has been fully drained.
	IsDone() bool

	// NextInput returns the next byte and true, or (0, false) if none is
	// available right now. The parser calls this without checking HasInput
	// first, so a feeder must return (0, false) when it has nothing rather
	// than panicking.
	NextInput() (byte, bool)
}
