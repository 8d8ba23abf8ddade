// Package event implements the value type for one MIDI channel message,
// meta event, or SysEx fragment inside a sequencer track, plus the
// ordering, linking, matching, and humanizing operations that work on it.
// The package owns no collection and does no I/O; containers hold slices
// of Event and refer between them by index.
package event

import (
	"fmt"
	"strings"

	"github.com/quaverd/midievent/status"
)

// Pulse is a timestamp in sequencer ticks (pulses of the PPQN clock).
type Pulse int64

// NullPulse is the "ignore the timestamp" sentinel used by Match.
const NullPulse Pulse = -1

// Event is a single MIDI event. The status byte always has its high bit
// set; for stored channel messages the channel nybble is cleared and the
// channel lives in its own byte. For Meta events (status 0xFF) the
// channel byte is repurposed to hold the meta type. The payload carries
// SysEx continuation data or meta content and is empty otherwise.
type Event struct {
	inputBus  byte
	timestamp Pulse
	status    byte
	channel   byte
	data      [2]byte
	payload   []byte

	// link is an index into the owning slice; meaningful only while
	// hasLink is set. Symmetry is the linking pass's job.
	link    int
	hasLink bool

	// Editor bookkeeping; no effect on MIDI semantics.
	selected bool
	marked   bool
	painted  bool
}

// New returns an empty event: a note-off on no particular channel at
// tick zero, with no input bus.
func New() Event {
	return Event{
		inputBus: status.NullBus,
		status:   status.NoteOff,
		channel:  status.NullChannel,
	}
}

// NewRaw builds an event from a raw status byte and data bytes. For a
// channel message the channel nybble is split out of the status; system
// and meta bytes are stored unmodified with no channel.
func NewRaw(tstamp Pulse, st, d0, d1 byte) Event {
	e := New()
	e.timestamp = tstamp
	if status.IsChannelMsg(st) {
		e.status = status.MaskStatus(st)
		e.channel = status.MaskChannel(st)
	} else {
		e.status = st
	}
	e.SetData(d0, d1)
	return e
}

// NewNote builds a note event. notekind is NoteOff or NoteOn with a zero
// channel nybble. A NullChannel channel stores the status exactly as
// given with channel 0; otherwise the channel is masked into both the
// status and the channel byte.
func NewNote(tstamp Pulse, notekind, channel byte, note, velocity int) Event {
	e := New()
	e.timestamp = tstamp
	e.status = notekind
	e.data[0] = byte(note)
	e.data[1] = byte(velocity)
	if status.IsNullChannel(channel) {
		e.channel = 0
	} else {
		ch := status.MaskChannel(channel)
		e.status = status.MaskStatus(notekind) | ch
		e.channel = ch
	}
	return e
}

// NewTempo builds a Set Tempo meta event from a beats/minute value.
func NewTempo(tstamp Pulse, bpm float64) Event {
	e := New()
	e.timestamp = tstamp
	e.status = status.Meta
	e.channel = status.MetaSetTempo
	e.SetTempo(bpm)
	return e
}

func (e *Event) Timestamp() Pulse     { return e.timestamp }
func (e *Event) SetTimestamp(t Pulse) { e.timestamp = t }
func (e *Event) Channel() byte        { return e.channel }
func (e *Event) Status() byte         { return e.status }
func (e *Event) InputBus() byte       { return e.inputBus }

// SetInputBus records the bus an event arrived on; the null sentinel is
// ignored.
func (e *Event) SetInputBus(b byte) {
	if !status.IsNullBus(b) {
		e.inputBus = b
	}
}

// ModTimestamp wraps the timestamp into [0, modtick), usually the length
// of the owning pattern.
func (e *Event) ModTimestamp(modtick Pulse) {
	if modtick > 1 {
		e.timestamp %= modtick
	}
}

// Rescale converts the timestamp from one PPQN resolution to another,
// rounding to the nearest tick.
func (e *Event) Rescale(newPPQN, oldPPQN int) {
	if newPPQN > 0 && oldPPQN > 0 {
		t := e.timestamp*Pulse(newPPQN) + Pulse(oldPPQN)/2
		e.timestamp = t / Pulse(oldPPQN)
	}
}

// SetStatus stores a status byte. System and meta bytes (0xF0 and above)
// are stored raw and clear the channel to the null sentinel; channel
// messages are stored with the channel nybble cleared and the channel
// recomputed from it. Data bytes are rejected.
func (e *Event) SetStatus(st byte) {
	if st >= status.SysEx {
		e.status = st
		e.channel = status.NullChannel
	} else if st >= status.NoteOff {
		e.status = status.MaskStatus(st)
		e.channel = status.MaskChannel(st)
	}
}

// SetChannel stores a channel. The null sentinel is stored as-is;
// anything else is masked to 0-15 and, if the current status is a
// channel message, folded into the status byte as well.
func (e *Event) SetChannel(channel byte) {
	if status.IsNullChannel(channel) {
		e.channel = channel
	} else {
		ch := status.MaskChannel(channel)
		e.channel = ch
		if e.HasChannel() {
			e.status = status.MaskStatus(e.status) | ch
		}
	}
}

// SetChannelStatus stores a raw status byte and then applies the given
// channel, useful when synthesizing events such as a zero-velocity
// note-on rewritten as a note-off.
func (e *Event) SetChannelStatus(st, channel byte) {
	e.status = st
	e.SetChannel(channel)
}

// SetMetaStatus marks the event as a Meta event of the given type. The
// payload still has to be supplied separately.
func (e *Event) SetMetaStatus(metatype byte) {
	e.status = status.Meta
	e.channel = metatype
}

// SetStatusKeepChannel stores the status byte verbatim, channel nybble
// included, and updates the channel byte from it for channel messages.
// Recording uses this so per-channel filtering can still see which
// physical channel produced the event.
func (e *Event) SetStatusKeepChannel(eventcode byte) {
	e.status = eventcode
	if status.IsChannelMsg(eventcode) {
		e.channel = status.MaskChannel(eventcode)
	}
}

// NormalizedStatus returns the status with the channel nybble stripped
// for channel messages.
func (e *Event) NormalizedStatus() byte { return status.Normalized(e.status) }

// StatusWithChannel combines the masked status with the given channel,
// as written to a bus on playback.
func (e *Event) StatusWithChannel(channel byte) byte {
	return status.MaskStatus(e.status) | channel
}

// MetaStatus returns the meta type for Meta events, 0 otherwise.
func (e *Event) MetaStatus() byte {
	if e.IsMeta() {
		return e.channel
	}
	return 0
}

func (e *Event) ValidStatus() bool { return status.IsStatus(e.status) }

// SetData stores the two data bytes with their high bits cleared.
func (e *Event) SetData(d0, d1 byte) {
	e.data[0] = d0 & status.DataMask
	e.data[1] = d1 & status.DataMask
}

// ClearData zeroes both data bytes, useful when reusing an event for
// incoming MIDI.
func (e *Event) ClearData() {
	e.data[0] = 0
	e.data[1] = 0
}

func (e *Event) D0() byte     { return e.data[0] }
func (e *Event) D1() byte     { return e.data[1] }
func (e *Event) SetD0(b byte) { e.data[0] = b }
func (e *Event) SetD1(b byte) { e.data[1] = b }

// Note returns the note number of a note message (the first data byte).
func (e *Event) Note() byte { return e.data[0] }

func (e *Event) SetNote(note byte) {
	e.data[0] = note & status.DataMask
}

// TransposeNote shifts the note number, skipping the change when the
// result would leave the 0-127 range.
func (e *Event) TransposeNote(tn int) {
	note := int(e.data[0]) + tn
	if note >= 0 && note < 128 {
		e.data[0] = byte(note)
	}
}

// Velocity returns the note velocity (the second data byte) for note
// messages, 0 otherwise.
func (e *Event) Velocity() byte {
	if e.IsNote() {
		return e.data[1]
	}
	return 0
}

func (e *Event) SetVelocity(vel int) {
	e.data[1] = byte(vel) & status.DataMask
}

// LinkTo records the slice index of this event's note partner.
func (e *Event) LinkTo(i int) {
	e.link = i
	e.hasLink = true
}

// Linked returns the partner index; meaningful only while IsLinked.
func (e *Event) Linked() int    { return e.link }
func (e *Event) IsLinked() bool { return e.hasLink }
func (e *Event) Unlink()        { e.hasLink = false }

func (e *Event) Select()          { e.selected = true }
func (e *Event) Unselect()        { e.selected = false }
func (e *Event) IsSelected() bool { return e.selected }
func (e *Event) Mark()            { e.marked = true }
func (e *Event) Unmark()          { e.marked = false }
func (e *Event) IsMarked() bool   { return e.marked }
func (e *Event) Paint()           { e.painted = true }
func (e *Event) Unpaint()         { e.painted = false }
func (e *Event) IsPainted() bool  { return e.painted }

// String formats the event for debug output: timestamp, link/mark/
// select/paint flags, status, channel (or meta type), the two data
// bytes, and a hex dump of any payload.
func (e *Event) String() string {
	var b strings.Builder
	flag := func(set bool, on, off string) string {
		if set {
			return on
		}
		return off
	}
	label := "channel"
	if e.IsMeta() {
		label = "type"
	}
	fmt.Fprintf(
		&b, "[%06d] (%s%s%s%s) event 0x%02X %s 0x%02X d0=%d d1=%d",
		e.timestamp,
		flag(e.hasLink, "L", "U"), flag(e.marked, "M", " "),
		flag(e.selected, "S", " "), flag(e.painted, "P", " "),
		e.status, label, e.channel, e.data[0], e.data[1],
	)
	if e.IsSysEx() || e.IsMeta() {
		fmt.Fprintf(&b, " payload[%d]:", len(e.payload))
		for _, p := range e.payload {
			fmt.Fprintf(&b, " %02X", p)
		}
	}
	return b.String()
}

// NoteString formats a note event, following its link into the owning
// slice so an on/off pair prints together.
func (e *Event) NoteString(all []Event) string {
	if !e.IsNote() {
		return ""
	}
	s := e.noteString()
	if e.IsLinked() && e.link >= 0 && e.link < len(all) {
		s += " --> " + all[e.link].noteString()
	}
	return s
}

func (e *Event) noteString() string {
	kind := "Off"
	if e.IsNoteOn() {
		kind = "On "
	}
	ch := "-"
	if !status.IsNullChannel(e.channel) {
		ch = fmt.Sprintf("%1x", e.channel)
	}
	return fmt.Sprintf(
		"%06d Note %s:%s %3d Vel %02X",
		e.timestamp, kind, ch, e.data[0], e.data[1],
	)
}
