package event

import (
	"sort"

	"github.com/quaverd/midievent/status"
)

// Rank bands for events sharing a timestamp. Smaller ranks sort earlier,
// so note-offs land ahead of note-ons at the same tick; otherwise a
// stale off-event processed after a fresh on-event chokes the new note.
const (
	rankNoteOff = 0x1000
	rankNoteOn  = 0x2000
	rankTouch   = 0x3000 // aftertouch, channel pressure, pitch wheel
	rankControl = 0x4000
	rankProgram = 0x5000
)

// Rank computes the tie-break priority of an event from its status,
// channel, and note number. Within the note bands the note number keeps
// simultaneous notes in pitch order; the channel occupies the highest
// bits of any non-zero rank so it disambiguates first. Everything
// outside the channel-voice bands ranks 0 and sorts ahead of them.
func Rank(st, channel, note byte) int {
	var r int
	switch status.MaskStatus(st) {
	case status.NoteOff:
		r = rankNoteOff + int(note)
	case status.NoteOn:
		r = rankNoteOn + int(note)
	case status.Aftertouch, status.ChannelPressure, status.PitchWheel:
		r = rankTouch
	case status.ControlChange:
		r = rankControl
	case status.ProgramChange:
		r = rankProgram
	default:
		return 0
	}
	return r | int(status.MaskChannel(channel))<<16
}

// Rank returns the tie-break priority of this event.
func (e *Event) Rank() int {
	return Rank(e.status, e.channel, e.data[0])
}

// Less is the total order over events: timestamp first, rank on a tie.
func (e *Event) Less(rhs *Event) bool {
	if e.timestamp == rhs.timestamp {
		return e.Rank() < rhs.Rank()
	}
	return e.timestamp < rhs.timestamp
}

// Key is a lightweight comparison key carrying only the parts of an
// event its ordering needs, for index structures that should not copy
// whole events.
type Key struct {
	Timestamp Pulse
	Rank      int
}

// KeyOf extracts the comparison key of an event.
func KeyOf(e *Event) Key {
	return Key{Timestamp: e.Timestamp(), Rank: e.Rank()}
}

// Less implements the same order as Event.Less.
func (k Key) Less(rhs Key) bool {
	if k.Timestamp == rhs.Timestamp {
		return k.Rank < rhs.Rank
	}
	return k.Timestamp < rhs.Timestamp
}

// Sort orders a slice of events by timestamp and rank. The sort is
// stable on purpose: an unstable sort reorders simultaneous events with
// equal ranks (program changes, notably) between successive save/reload
// cycles.
func Sort(evs []Event) {
	sort.SliceStable(evs, func(i, j int) bool {
		return evs[i].Less(&evs[j])
	})
}
