package event

import (
	"github.com/quaverd/midievent/status"
	"github.com/quaverd/midievent/tempo"
)

// ResetPayload drops any SysEx/meta payload.
func (e *Event) ResetPayload() { e.payload = nil }

// AppendPayload appends bytes to the payload. Returns false when there
// is nothing to append.
func (e *Event) AppendPayload(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	e.payload = append(e.payload, data...)
	return true
}

// AppendPayloadByte logs one SysEx byte. It reports whether the message
// is still open: false once the 0xF7 end marker lands, except when 0xF7
// is the very first byte, which is a SysEx-continue and starts the
// payload instead of ending it.
func (e *Event) AppendPayloadByte(data byte) bool {
	first := len(e.payload) == 0
	e.payload = append(e.payload, data)
	return first || data != status.SysExEnd
}

// SetPayload replaces the payload.
func (e *Event) SetPayload(data []byte) bool {
	e.ResetPayload()
	return e.AppendPayload(data)
}

func (e *Event) PayloadSize() int { return len(e.payload) }

// Payload exposes the raw payload bytes; callers must not hold the slice
// across mutations.
func (e *Event) Payload() []byte { return e.payload }

// PayloadByte returns the i'th payload byte, 0 when out of range.
func (e *Event) PayloadByte(i int) byte {
	if i >= 0 && i < len(e.payload) {
		return e.payload[i]
	}
	return 0
}

// Text views the payload as a byte-for-byte string. Bytes above 127 pass
// through unchanged; escaping is a caller concern.
func (e *Event) Text() string { return string(e.payload) }

// SetText loads a string into the payload unconditionally. Returns false
// for an empty string.
func (e *Event) SetText(s string) bool {
	if s == "" {
		return false
	}
	e.payload = []byte(s)
	return true
}

// AppendMeta marks the event as a Meta event of the given type and
// appends its content bytes. Returns false when data is empty, in which
// case nothing changes.
func (e *Event) AppendMeta(metatype byte, data []byte) bool {
	if len(data) == 0 {
		return false
	}
	e.SetMetaStatus(metatype)
	e.payload = append(e.payload, data...)
	return true
}

// Tempo decodes the beats/minute value of a Set Tempo event. Returns 0.0
// when the event is not a tempo event or the payload is not exactly the
// three tempo bytes.
func (e *Event) Tempo() float64 {
	if e.IsTempo() && len(e.payload) == tempo.NumBytes {
		return tempo.ToBPM(e.payload)
	}
	return 0.0
}

// SetTempo encodes a beats/minute value into the three payload bytes.
func (e *Event) SetTempo(bpm float64) bool {
	t := tempo.FromBPM(bpm)
	return e.SetPayload(t[:])
}

// SetTempoBytes stores three raw tempo bytes after validating that they
// decode to positive microseconds.
func (e *Event) SetTempoBytes(t []byte) bool {
	if tempo.BytesToUs(t) <= 0 {
		return false
	}
	return e.SetPayload(t)
}
