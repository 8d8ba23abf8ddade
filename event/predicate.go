package event

import "github.com/quaverd/midievent/status"

// Match reports whether two events are "identical" for search purposes:
// equal status and channel, plus equal data bytes for anything but a
// meta event. Payloads are not compared. A target timestamp of NullPulse
// matches any timestamp. Not a substitute for Less.
func (e *Event) Match(target *Event) bool {
	ignoreTS := target.timestamp == NullPulse
	if !ignoreTS && e.timestamp != target.timestamp {
		return false
	}
	if e.status != target.status || e.channel != target.channel {
		return false
	}
	if e.IsMeta() {
		return true
	}
	return e.data == target.data
}

// MatchStatus compares statuses after stripping the channel nybble from
// channel messages; st is expected to carry a zero channel nybble.
func (e *Event) MatchStatus(st byte) bool {
	s := e.status
	if e.HasChannel() {
		s = status.MaskStatus(s)
	}
	return s == st
}

// MatchChannel reports whether the event is on the given channel or has
// no channel of its own.
func (e *Event) MatchChannel(channel byte) bool {
	return status.IsNullChannel(e.channel) || channel == e.channel
}

// IsDesired reports whether the event is the one a search or filter is
// after. Tempo events always match, whatever status was requested;
// otherwise the status families must agree, and a control-change request
// additionally requires the controller number in d0 to equal cc.
func (e *Event) IsDesired(st, cc byte) bool {
	if e.IsTempo() {
		return true
	}
	s := status.MaskStatus(st)
	if s != status.MaskStatus(e.status) {
		return false
	}
	if s == status.ControlChange {
		return e.data[0] == cc
	}
	return true
}

// IsDesiredEx is a second matching rule with its own history: a
// control-change request demands an exact status plus controller match,
// tempo events always match, and any other request needs only the
// status-family match. Callers depend on the places where this diverges
// from IsDesired, so the two are deliberately not unified.
func (e *Event) IsDesiredEx(st, cc byte) bool {
	match := e.MatchStatus(st)
	if st == status.ControlChange {
		return match && e.data[0] == cc
	}
	if e.IsTempo() {
		return true
	}
	return match
}

func (e *Event) IsNoteOn() bool  { return status.MaskStatus(e.status) == status.NoteOn }
func (e *Event) IsNoteOff() bool { return status.MaskStatus(e.status) == status.NoteOff }

// IsNote covers note-on, note-off, and aftertouch, the messages keyed by
// a note number.
func (e *Event) IsNote() bool       { return status.IsNoteMsg(e.status) }
func (e *Event) IsStrictNote() bool { return status.IsStrictNoteMsg(e.status) }

func (e *Event) IsController() bool    { return status.IsControllerMsg(e.status) }
func (e *Event) IsPitchbend() bool     { return status.IsPitchbendMsg(e.status) }
func (e *Event) IsProgramChange() bool { return status.IsProgramChangeMsg(e.status) }

// HasChannel reports whether the status is a channel-voice message.
func (e *Event) HasChannel() bool { return status.IsChannelMsg(e.status) }

func (e *Event) IsOneByte() bool  { return status.IsOneByteMsg(e.status) }
func (e *Event) IsTwoBytes() bool { return status.IsTwoByteMsg(e.status) }

func (e *Event) IsSysEx() bool  { return status.IsSysExMsg(e.status) }
func (e *Event) IsMeta() bool   { return status.IsMetaMsg(e.status) }
func (e *Event) IsExData() bool { return status.IsExDataMsg(e.status) }
func (e *Event) IsSystem() bool { return status.IsSystemMsg(e.status) }

// IsMetaText reports the text-carrying meta types; the channel byte
// holds the meta type here.
func (e *Event) IsMetaText() bool {
	return e.IsMeta() && status.IsMetaTextMsg(e.channel)
}

func (e *Event) IsTempo() bool {
	return e.IsMeta() && e.channel == status.MetaSetTempo
}

func (e *Event) IsTimeSignature() bool {
	return e.IsMeta() && e.channel == status.MetaTimeSignature
}

func (e *Event) IsKeySignature() bool {
	return e.IsMeta() && e.channel == status.MetaKeySignature
}

// IsNoteOffRecorded reports a note-on stored with velocity zero, the
// note-off convention of some keyboards.
func (e *Event) IsNoteOffRecorded() bool {
	return status.IsNoteOffVelocity(e.status, e.data[1])
}

// IsPlayable excludes pure metadata from playback, keeping tempo events
// in because the clock needs them.
func (e *Event) IsPlayable() bool {
	return (e.status != status.Meta && e.status != status.SysEx) || e.IsTempo()
}

func (e *Event) IsMidiStart() bool    { return e.status == status.Start }
func (e *Event) IsMidiContinue() bool { return e.status == status.Continue }
func (e *Event) IsMidiStop() bool     { return e.status == status.Stop }
func (e *Event) IsMidiClock() bool    { return e.status == status.Clock }
func (e *Event) IsMidiSongPos() bool  { return e.status == status.SongPos }

func (e *Event) IsSenseReset() bool {
	return status.IsSenseOrReset(e.status)
}
