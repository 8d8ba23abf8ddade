package event

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quaverd/midievent/status"
)

func TestMatchIsReflexive(t *testing.T) {
	evs := []Event{
		NewNote(10, status.NoteOn, 3, 60, 100),
		NewRaw(20, 0xB1, 7, 64),
		NewTempo(30, 140.0),
	}

	assert := assert.New(t)
	for i := range evs {
		assert.True(evs[i].Match(&evs[i]))
	}
}

func TestMatchIsSymmetricForConcreteTimestamps(t *testing.T) {
	a := NewNote(10, status.NoteOn, 3, 60, 100)
	b := NewNote(10, status.NoteOn, 3, 60, 100)
	c := NewNote(10, status.NoteOn, 3, 61, 100)

	assert := assert.New(t)
	assert.Equal(a.Match(&b), b.Match(&a))
	assert.Equal(a.Match(&c), c.Match(&a))
}

func TestMatchComparesDataAndPlacement(t *testing.T) {
	a := NewNote(10, status.NoteOn, 3, 60, 100)

	differentVel := a
	differentVel.SetVelocity(99)
	differentTick := a
	differentTick.SetTimestamp(11)
	differentChannel := a
	differentChannel.SetChannel(4)

	assert := assert.New(t)
	assert.False(a.Match(&differentVel))
	assert.False(a.Match(&differentTick))
	assert.False(a.Match(&differentChannel))
}

func TestMatchNullPulseIgnoresTimestamp(t *testing.T) {
	a := NewNote(10, status.NoteOn, 3, 60, 100)
	target := NewNote(NullPulse, status.NoteOn, 3, 60, 100)

	assert.True(t, a.Match(&target))
}

func TestMatchIgnoresDataOnMetaEvents(t *testing.T) {
	a := NewTempo(10, 120.0)
	b := NewTempo(10, 120.0)
	b.SetData(1, 2)

	assert.True(t, a.Match(&b))
}

func TestDesiredMatchesStatusFamily(t *testing.T) {
	noteOn := NewNote(0, status.NoteOn, 3, 60, 100)

	assert := assert.New(t)
	assert.True(noteOn.IsDesired(status.NoteOn, 0))
	assert.True(noteOn.IsDesired(0x95, 0)) // channel nybble stripped from the request
	assert.False(noteOn.IsDesired(status.NoteOff, 0))
}

func TestDesiredRequiresControllerNumberForCC(t *testing.T) {
	volume := NewRaw(0, 0xB2, 7, 64)

	assert := assert.New(t)
	assert.True(volume.IsDesired(status.ControlChange, 7))
	assert.False(volume.IsDesired(status.ControlChange, 10))
}

func TestDesiredAlwaysMatchesTempo(t *testing.T) {
	tempoEv := NewTempo(0, 120.0)

	assert := assert.New(t)
	assert.True(tempoEv.IsDesired(status.NoteOn, 0))
	assert.True(tempoEv.IsDesired(status.ControlChange, 7))
}

func TestDesiredExDivergesFromDesired(t *testing.T) {
	assert := assert.New(t)

	// The exact rule does not strip the channel nybble from the request.
	volume := NewRaw(0, 0xB2, 7, 64)
	assert.True(volume.IsDesired(0xB3, 7))
	assert.False(volume.IsDesiredEx(0xB3, 7))
	assert.True(volume.IsDesiredEx(status.ControlChange, 7))
	assert.False(volume.IsDesiredEx(status.ControlChange, 10))

	// A controller request under the exact rule skips the tempo pass.
	tempoEv := NewTempo(0, 120.0)
	assert.True(tempoEv.IsDesired(status.ControlChange, 7))
	assert.False(tempoEv.IsDesiredEx(status.ControlChange, 7))
	assert.True(tempoEv.IsDesiredEx(status.NoteOn, 0))
}

func TestFamilyPredicates(t *testing.T) {
	cases := []struct {
		name     string
		ev       Event
		playable bool
		channel  bool
	}{
		{"note-on", NewNote(0, status.NoteOn, 0, 60, 100), true, true},
		{"note-off", NewNote(0, status.NoteOff, 0, 60, 0), true, true},
		{"control change", NewRaw(0, 0xB0, 7, 64), true, true},
		{"pitch wheel", NewRaw(0, 0xE0, 0, 0x40), true, true},
		{"tempo", NewTempo(0, 120.0), true, false},
		{"clock", NewRaw(0, status.Clock, 0, 0), true, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert := assert.New(t)
			assert.Equal(c.playable, c.ev.IsPlayable())
			assert.Equal(c.channel, c.ev.HasChannel())
		})
	}
}

func TestNonTempoMetaIsNotPlayable(t *testing.T) {
	e := New()
	e.AppendMeta(status.MetaText, []byte("take one"))

	assert := assert.New(t)
	assert.True(e.IsMeta())
	assert.True(e.IsMetaText())
	assert.False(e.IsPlayable())
	assert.Equal("take one", e.Text())
}
