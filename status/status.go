// Package status holds the raw MIDI status-byte constants and the
// classification predicates used throughout the event core. The high bit
// of a status byte is always set; everything below 0xF0 is a channel
// message carrying the channel in its low nybble, 0xF0-0xFE are system
// messages, and 0xFF doubles as the Meta escape code in stored tracks.
package status

// Channel voice messages. The channel nybble is zero here; mask it in as
// needed.
const (
	NoteOff         byte = 0x80
	NoteOn          byte = 0x90
	Aftertouch      byte = 0xA0
	ControlChange   byte = 0xB0
	ProgramChange   byte = 0xC0
	ChannelPressure byte = 0xD0
	PitchWheel      byte = 0xE0
)

// System messages.
const (
	SysEx        byte = 0xF0
	QuarterFrame byte = 0xF1
	SongPos      byte = 0xF2
	SongSelect   byte = 0xF3
	TuneSelect   byte = 0xF6
	SysExEnd     byte = 0xF7
	Clock        byte = 0xF8
	Start        byte = 0xFA
	Continue     byte = 0xFB
	Stop         byte = 0xFC
	ActiveSense  byte = 0xFE
	Reset        byte = 0xFF

	// Meta has the same code as Reset; Reset arrives on a bus, Meta lives
	// in a stored track.
	Meta byte = 0xFF
)

// Meta event types, stored in the event's channel byte.
const (
	MetaSeqNumber     byte = 0x00
	MetaText          byte = 0x01
	MetaCopyright     byte = 0x02
	MetaTrackName     byte = 0x03
	MetaInstrument    byte = 0x04
	MetaLyric         byte = 0x05
	MetaMarker        byte = 0x06
	MetaCuePoint      byte = 0x07
	MetaProgramName   byte = 0x08
	MetaPortName      byte = 0x09
	MetaChannelPrefix byte = 0x20
	MetaPort          byte = 0x21
	MetaEndOfTrack    byte = 0x2F
	MetaSetTempo      byte = 0x51
	MetaSMPTEOffset   byte = 0x54
	MetaTimeSignature byte = 0x58
	MetaKeySignature  byte = 0x59
	MetaSeqSpec       byte = 0x7F
)

// Masks and sentinels.
const (
	StatusBit   byte = 0x80
	ChanMask    byte = 0x0F
	StatusMask  byte = 0xF0
	DataMask    byte = 0x7F
	NullChannel byte = 0x80 // channel "not applicable"
	NullBus     byte = 0xFF // no input bus recorded
	MetaIllegal byte = 0xFF
)

// MaskChannel extracts the channel nybble of a status byte.
func MaskChannel(m byte) byte { return m & ChanMask }

// MaskStatus strips the channel nybble of a status byte.
func MaskStatus(m byte) byte { return m & StatusMask }

// IsStatus reports whether the high bit is set; bytes without it are data.
func IsStatus(m byte) bool { return m&StatusBit != 0 }

// Normalized strips the channel nybble from channel messages and leaves
// system/meta bytes untouched.
func Normalized(m byte) byte {
	if IsChannelMsg(m) {
		return MaskStatus(m)
	}
	return m
}

// IsChannelMsg covers the voice-category range 0x80-0xEF.
func IsChannelMsg(m byte) bool { return m >= NoteOff && m < SysEx }

// IsSystemMsg covers 0xF0-0xFF.
func IsSystemMsg(m byte) bool { return m >= SysEx }

// IsMetaMsg reports the Meta escape code.
func IsMetaMsg(m byte) bool { return m == Meta }

// IsExDataMsg reports the two statuses that carry a variable-length
// payload: SysEx start and Meta.
func IsExDataMsg(m byte) bool { return m == Meta || m == SysEx }

// IsSysExMsg accepts the SysEx start byte and the 0xF7 continuation code.
func IsSysExMsg(m byte) bool { return m == SysEx || m == SysExEnd }

// IsNoteMsg covers Note Off, Note On, and Aftertouch, the messages keyed
// by a note number.
func IsNoteMsg(m byte) bool { return m >= NoteOff && m < ControlChange }

// IsStrictNoteMsg covers Note Off and Note On only, used by linking.
func IsStrictNoteMsg(m byte) bool { return m >= NoteOff && m < Aftertouch }

// IsNoteOnMsg covers Note On on any channel.
func IsNoteOnMsg(m byte) bool { return m >= NoteOn && m < Aftertouch }

// IsOneByteMsg reports channel messages with a single data byte: Program
// Change and Channel Pressure.
func IsOneByteMsg(m byte) bool {
	s := MaskStatus(m)
	return s == ProgramChange || s == ChannelPressure
}

// IsTwoByteMsg reports channel messages with two data bytes: notes,
// aftertouch, control change, and pitch wheel.
func IsTwoByteMsg(m byte) bool {
	return (m >= NoteOff && m < ProgramChange) || MaskStatus(m) == PitchWheel
}

// IsNoteOffVelocity reports the note-on-with-zero-velocity convention
// some keyboards use for note-off.
func IsNoteOffVelocity(st, vel byte) bool {
	return MaskStatus(st) == NoteOn && vel == 0
}

func IsControllerMsg(m byte) bool    { return MaskStatus(m) == ControlChange }
func IsPitchbendMsg(m byte) bool     { return MaskStatus(m) == PitchWheel }
func IsProgramChangeMsg(m byte) bool { return MaskStatus(m) == ProgramChange }

// IsTempoStatus reports the Set Tempo meta type.
func IsTempoStatus(m byte) bool { return m == MetaSetTempo }

// IsMetaTextMsg reports the text-carrying meta types, Text through Cue
// Point.
func IsMetaTextMsg(m byte) bool { return m >= MetaText && m <= MetaCuePoint }

// IsSystemCommonMsg covers 0xF0-0xF7, the statuses that clear running
// status on the wire.
func IsSystemCommonMsg(m byte) bool { return m >= SysEx && m < Clock }

// IsRealtimeMsg covers 0xF8-0xFF, which ignore running status.
func IsRealtimeMsg(m byte) bool { return m >= Clock }

func IsSenseOrReset(m byte) bool { return m == ActiveSense || m == Reset }

// IsNullChannel reports the "no channel" sentinel (or anything above the
// 0-15 range).
func IsNullChannel(c byte) bool { return c >= NullChannel }

// IsNullBus reports the "no input bus" sentinel.
func IsNullBus(b byte) bool { return b == NullBus }
