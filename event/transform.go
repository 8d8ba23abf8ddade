package event

import (
	"math/rand"

	"github.com/quaverd/midievent/util"
)

// The humanizing transforms below take the random source as a parameter
// so batch callers can share one seeded generator and tests can pin the
// output. Callers synchronize access to rng themselves.

// uniform returns a delta in [-r, +r].
func uniform(rng *rand.Rand, r int) int {
	return rng.Intn(2*r+1) - r
}

// Jitter moves the timestamp by a random delta in [-rangeTicks,
// +rangeTicks], clamped to [0, seqLength). Returns false for a
// non-positive range or a zero delta.
func (e *Event) Jitter(rng *rand.Rand, rangeTicks int, seqLength Pulse) bool {
	if rangeTicks <= 0 {
		return false
	}
	delta := uniform(rng, rangeTicks)
	if delta == 0 {
		return false
	}
	e.timestamp = util.Clamp(e.timestamp+Pulse(delta), 0, seqLength-1)
	return true
}

// Randomize perturbs the event's active data byte, d1 for two-data-byte
// messages and d0 otherwise, by a random delta in [-rangeVal, +rangeVal]
// clamped to 0-127. Returns false for a non-positive range or a zero
// delta. Note that this happily alters a velocity-zero note-on; callers
// that care should skip those.
func (e *Event) Randomize(rng *rand.Rand, rangeVal int) bool {
	if rangeVal <= 0 {
		return false
	}
	delta := uniform(rng, rangeVal)
	if delta == 0 {
		return false
	}
	twoBytes := e.IsTwoBytes()
	datum := int(e.data[0])
	if twoBytes {
		datum = int(e.data[1])
	}
	d := byte(util.Clamp(datum+delta, 0, 127))
	if twoBytes {
		e.data[1] = d
	} else {
		e.data[0] = d
	}
	return true
}

// Tighten pulls the timestamp halfway toward the nearest snap boundary:
// a remainder below snap/2 shifts back by half the remainder, anything
// else shifts forward by half the distance to the next boundary. A shift
// that would reach seqLength wraps the timestamp to 0. Returns false for
// a non-positive snap or when nothing moves.
func (e *Event) Tighten(snap int, seqLength Pulse) bool {
	return e.snapTimestamp(snap, seqLength, true)
}

// Quantize snaps the timestamp exactly onto the nearest snap boundary,
// with the same wrap rule as Tighten. Quantizing twice with the same
// arguments is a no-op the second time.
func (e *Event) Quantize(snap int, seqLength Pulse) bool {
	return e.snapTimestamp(snap, seqLength, false)
}

func (e *Event) snapTimestamp(snap int, seqLength Pulse, half bool) bool {
	if snap <= 0 {
		return false
	}
	t := e.timestamp
	remainder := t % Pulse(snap)
	var delta Pulse
	if remainder < Pulse(snap)/2 {
		delta = -remainder
	} else {
		delta = Pulse(snap) - remainder
	}
	if half {
		delta /= 2
	}
	if delta == 0 {
		return false
	}
	t += delta
	if t >= seqLength || t < 0 {
		t = 0
	}
	e.timestamp = t
	return true
}
