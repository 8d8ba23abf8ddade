package event

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quaverd/midievent/status"
)

func TestDecodesThreeByteMessage(t *testing.T) {
	e := New()
	ok := e.SetMidiEvent(480, []byte{0x93, 60, 100}, 0, false)

	assert := assert.New(t)
	assert.True(ok)
	assert.Equal(Pulse(480), e.Timestamp())
	assert.Equal(byte(0x93), e.Status())
	assert.Equal(byte(3), e.Channel())
	assert.Equal(byte(60), e.D0())
	assert.Equal(byte(100), e.D1())
	assert.True(e.IsNoteOn())
}

func TestDecodesTwoByteMessage(t *testing.T) {
	e := New()
	ok := e.SetMidiEvent(0, []byte{0xC2, 7}, 0, false)

	assert := assert.New(t)
	assert.True(ok)
	assert.Equal(byte(0xC2), e.Status())
	assert.Equal(byte(2), e.Channel())
	assert.Equal(byte(7), e.D0())
	assert.Equal(byte(0), e.D1())
	assert.True(e.IsProgramChange())
}

func TestDecodesOneByteMessage(t *testing.T) {
	e := New()
	e.SetData(1, 2)
	ok := e.SetMidiEvent(0, []byte{0xF8}, 0, false)

	assert := assert.New(t)
	assert.True(ok)
	assert.True(e.IsMidiClock())
	assert.Equal(byte(status.NullChannel), e.Channel())
	assert.Equal(byte(0), e.D0())
	assert.Equal(byte(0), e.D1())
}

func TestConvertsZeroVelocityNoteOn(t *testing.T) {
	e := New()
	ok := e.SetMidiEvent(0, []byte{0x95, 60, 0}, 0, true)

	assert := assert.New(t)
	assert.True(ok)
	assert.True(e.IsNoteOff())
	assert.Equal(byte(0x85), e.Status())
	assert.Equal(byte(5), e.Channel())
	assert.Equal(byte(60), e.Note())
}

func TestKeepsZeroVelocityNoteOnWithoutConversion(t *testing.T) {
	e := New()
	ok := e.SetMidiEvent(0, []byte{0x95, 60, 0}, 0, false)

	assert := assert.New(t)
	assert.True(ok)
	assert.True(e.IsNoteOn())
	assert.True(e.IsNoteOffRecorded())
}

func TestDecodesSysExBuffer(t *testing.T) {
	e := New()
	buf := []byte{0xF0, 0x7E, 0x09, 0x01, 0xF7}
	ok := e.SetMidiEvent(0, buf, len(buf), false)

	assert := assert.New(t)
	assert.True(ok)
	assert.True(e.IsSysEx())
	assert.Equal(4, e.PayloadSize())
	assert.Equal([]byte{0x7E, 0x09, 0x01, 0xF7}, e.Payload())
}

func TestRejectsBadBuffers(t *testing.T) {
	cases := []struct {
		name  string
		buf   []byte
		count int
	}{
		{"empty", []byte{}, 0},
		{"data byte first", []byte{0x40, 0x40}, 0},
		{"count beyond buffer", []byte{0x90, 60}, 3},
		{"negative count", []byte{0xF0, 0x7E, 0xF7}, -1},
		{"long non-sysex", []byte{0x90, 60, 100, 0x40}, 4},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := New()
			assert.False(t, e.SetMidiEvent(0, c.buf, c.count, true))
		})
	}
}
