package event

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quaverd/midievent/status"
)

func TestSortsNoteOffBeforeNoteOnAtSameTick(t *testing.T) {
	on := NewNote(96, status.NoteOn, 0, 60, 100)
	off := NewNote(96, status.NoteOff, 0, 60, 0)
	evs := []Event{on, off}
	Sort(evs)

	assert := assert.New(t)
	assert.True(evs[0].IsNoteOff())
	assert.True(evs[1].IsNoteOn())
}

func TestSortsNonChannelEventsFirstAtSameTick(t *testing.T) {
	evs := []Event{
		NewNote(0, status.NoteOff, 0, 60, 0),
		NewTempo(0, 120.0),
	}
	Sort(evs)

	assert := assert.New(t)
	assert.True(evs[0].IsTempo())
	assert.True(evs[1].IsNoteOff())
}

func TestChannelDominatesNoteNumberInRank(t *testing.T) {
	highNoteCh0 := NewNote(0, status.NoteOn, 0, 127, 100)
	lowNoteCh1 := NewNote(0, status.NoteOn, 1, 0, 100)
	evs := []Event{lowNoteCh1, highNoteCh0}
	Sort(evs)

	assert := assert.New(t)
	assert.Equal(byte(0), evs[0].Channel())
	assert.Equal(byte(1), evs[1].Channel())
}

func TestTimestampBeatsRank(t *testing.T) {
	early := NewNote(10, status.NoteOn, 0, 60, 100)
	late := NewNote(20, status.NoteOff, 0, 60, 0)
	evs := []Event{late, early}
	Sort(evs)

	assert := assert.New(t)
	assert.True(evs[0].IsNoteOn())
	assert.True(evs[1].IsNoteOff())
}

func TestSortIsStableForEqualKeys(t *testing.T) {
	// Two program changes at the same tick have identical keys; their
	// relative order has to survive the sort.
	first := NewRaw(0, 0xC0, 10, 0)
	second := NewRaw(0, 0xC0, 20, 0)
	evs := []Event{first, second}
	Sort(evs)

	assert := assert.New(t)
	assert.Equal(byte(10), evs[0].D0())
	assert.Equal(byte(20), evs[1].D0())
}

func TestRankBandOrder(t *testing.T) {
	cases := []struct {
		name string
		ev   Event
	}{
		{"tempo", NewTempo(0, 120.0)},
		{"note-off", NewNote(0, status.NoteOff, 0, 60, 0)},
		{"note-on", NewNote(0, status.NoteOn, 0, 60, 100)},
		{"pitch wheel", NewRaw(0, 0xE0, 0, 0x40)},
		{"control change", NewRaw(0, 0xB0, 7, 64)},
		{"program change", NewRaw(0, 0xC0, 5, 0)},
	}

	prev := -1
	for _, c := range cases {
		r := c.ev.Rank()
		if r <= prev {
			t.Errorf("%v rank %v not above previous band %v", c.name, r, prev)
		}
		prev = r
	}
}

func TestKeyOrdersLikeEvent(t *testing.T) {
	a := NewNote(0, status.NoteOff, 0, 60, 0)
	b := NewNote(0, status.NoteOn, 0, 60, 100)
	c := NewNote(5, status.NoteOff, 0, 60, 0)

	assert := assert.New(t)
	assert.True(a.Less(&b))
	assert.True(KeyOf(&a).Less(KeyOf(&b)))
	assert.True(b.Less(&c))
	assert.True(KeyOf(&b).Less(KeyOf(&c)))
	assert.False(KeyOf(&c).Less(KeyOf(&a)))
}

func TestLinksNearestFollowingNoteOff(t *testing.T) {
	evs := []Event{
		NewNote(0, status.NoteOn, 2, 60, 100),
		NewNote(10, status.NoteOn, 2, 60, 100),
		NewNote(20, status.NoteOff, 2, 60, 0),
		NewNote(30, status.NoteOff, 2, 60, 0),
	}
	pairs := LinkNotes(evs)

	assert := assert.New(t)
	assert.Equal(2, pairs)
	assert.True(evs[0].IsLinked())
	assert.Equal(2, evs[0].Linked())
	assert.Equal(0, evs[2].Linked())
	assert.Equal(3, evs[1].Linked())
	assert.Equal(1, evs[3].Linked())
}

func TestDoesNotLinkAcrossChannelOrNote(t *testing.T) {
	evs := []Event{
		NewNote(0, status.NoteOn, 0, 60, 100),
		NewNote(10, status.NoteOff, 1, 60, 0),
		NewNote(20, status.NoteOff, 0, 61, 0),
	}
	pairs := LinkNotes(evs)

	assert := assert.New(t)
	assert.Equal(0, pairs)
	assert.False(evs[0].IsLinked())
}

func TestClearLinksUnlinksEverything(t *testing.T) {
	evs := []Event{
		NewNote(0, status.NoteOn, 0, 60, 100),
		NewNote(10, status.NoteOff, 0, 60, 0),
	}
	LinkNotes(evs)
	ClearLinks(evs)

	assert := assert.New(t)
	assert.False(evs[0].IsLinked())
	assert.False(evs[1].IsLinked())
}
