// Package tempo converts between beats-per-minute, microseconds per
// quarter note, and the 3-byte big-endian payload of a Set Tempo meta
// event (FF 51 03 t2 t1 t0).
package tempo

// MicrosPerMinute is the pivot for the BPM conversion. 120 BPM is
// 500000 us per quarter note, encoded as 07 A1 20.
const MicrosPerMinute = 60_000_000.0

// NumBytes is the payload size of a Set Tempo meta event.
const NumBytes = 3

// BPMToUs converts beats/minute to microseconds per quarter note.
func BPMToUs(bpm float64) float64 {
	if bpm <= 0.0 {
		return 0.0
	}
	return MicrosPerMinute / bpm
}

// UsToBPM converts microseconds per quarter note to beats/minute.
func UsToBPM(us float64) float64 {
	if us <= 0.0 {
		return 0.0
	}
	return MicrosPerMinute / us
}

// UsToBytes encodes a microsecond tempo as the three big-endian payload
// bytes.
func UsToBytes(us int) [NumBytes]byte {
	var t [NumBytes]byte
	t[0] = byte((us & 0xFF0000) >> 16)
	t[1] = byte((us & 0x00FF00) >> 8)
	t[2] = byte(us & 0x0000FF)
	return t
}

// BytesToUs decodes the three payload bytes to microseconds. Returns 0
// if the slice is not exactly three bytes.
func BytesToUs(t []byte) int {
	if len(t) != NumBytes {
		return 0
	}
	us := int(t[0])
	us = us*256 + int(t[1])
	us = us*256 + int(t[2])
	return us
}

// FromBPM encodes a BPM value directly as tempo payload bytes.
func FromBPM(bpm float64) [NumBytes]byte {
	return UsToBytes(int(BPMToUs(bpm)))
}

// ToBPM decodes tempo payload bytes directly to BPM. Returns 0.0 on a
// malformed payload or non-positive microseconds; callers treat 0.0 as
// the error sentinel.
func ToBPM(t []byte) float64 {
	us := BytesToUs(t)
	if us <= 0 {
		return 0.0
	}
	return UsToBPM(float64(us))
}
