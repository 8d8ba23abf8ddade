package event

import "github.com/quaverd/midievent/status"

// SetMidiEvent loads the event from a raw byte buffer, as read from an
// input port. count is the number of meaningful bytes in buf; pass 0 to
// classify the message length from the leading status byte. When
// convertZeroVel is set, a note-on with velocity zero is stored as a
// note-off on the same channel, the convention some keyboards use.
//
// Returns false, leaving no payload behind, when the buffer is empty,
// the count is negative or beyond the buffer, or the leading byte is
// neither a classifiable message nor a SysEx start.
func (e *Event) SetMidiEvent(tstamp Pulse, buf []byte, count int, convertZeroVel bool) bool {
	if len(buf) == 0 || !status.IsStatus(buf[0]) {
		return false
	}
	e.SetTimestamp(tstamp)
	if count == 0 {
		if status.IsTwoByteMsg(buf[0]) {
			count = 3
		} else if status.IsOneByteMsg(buf[0]) {
			count = 2
		} else {
			count = 1
		}
	}
	if count < 0 || count > len(buf) {
		return false
	}
	switch count {
	case 3:
		e.SetStatusKeepChannel(buf[0])
		e.SetData(buf[1], buf[2])
		if convertZeroVel && e.IsNoteOffRecorded() {
			ch := status.MaskChannel(buf[0])
			e.SetStatusKeepChannel(status.NoteOff | ch)
		}
	case 2:
		e.SetStatusKeepChannel(buf[0])
		e.SetData(buf[1], 0)
	case 1:
		e.SetStatus(buf[0])
		e.ClearData()
	default:
		// A longer buffer is only legal for SysEx. The payload holds
		// everything after the leading 0xF0, end marker included.
		if buf[0] != status.SysEx {
			return false
		}
		e.SetStatus(status.SysEx)
		e.ClearData()
		e.ResetPayload()
		return e.AppendPayload(buf[1:count])
	}
	return true
}
