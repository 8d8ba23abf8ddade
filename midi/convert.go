package midi

import (
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/quaverd/midievent/event"
	"github.com/quaverd/midievent/status"
)

// FromSMF flattens all tracks of a parsed MIDI file into events with
// absolute-tick timestamps. Messages the event core does not model
// (end-of-track and the more exotic metas) are skipped. The result is
// unsorted; run event.Sort before linking or playback.
func FromSMF(s *smf.SMF) []event.Event {
	var res []event.Event
	for _, track := range s.Tracks {
		var absTicks uint64
		for _, ev := range track {
			absTicks += uint64(ev.Delta)
			ts := event.Pulse(absTicks)

			var ch, key, vel, cc, val, prog, press uint8
			var rel int16
			var abs uint16
			var bpm float64
			var bt []byte
			msg := ev.Message
			switch {
			case msg.GetNoteOn(&ch, &key, &vel):
				res = append(res, event.NewNote(ts, status.NoteOn, ch, int(key), int(vel)))
			case msg.GetNoteOff(&ch, &key, &vel):
				res = append(res, event.NewNote(ts, status.NoteOff, ch, int(key), int(vel)))
			case msg.GetPolyAfterTouch(&ch, &key, &press):
				res = append(res, event.NewRaw(ts, status.Aftertouch|ch, key, press))
			case msg.GetControlChange(&ch, &cc, &val):
				res = append(res, event.NewRaw(ts, status.ControlChange|ch, cc, val))
			case msg.GetProgramChange(&ch, &prog):
				res = append(res, event.NewRaw(ts, status.ProgramChange|ch, prog, 0))
			case msg.GetAfterTouch(&ch, &press):
				res = append(res, event.NewRaw(ts, status.ChannelPressure|ch, press, 0))
			case msg.GetPitchBend(&ch, &rel, &abs):
				res = append(res, event.NewRaw(ts, status.PitchWheel|ch, byte(abs&0x7F), byte(abs>>7)))
			case msg.GetMetaTempo(&bpm):
				res = append(res, event.NewTempo(ts, bpm))
			case gomidi.Message(msg).GetSysEx(&bt):
				e := event.New()
				e.SetTimestamp(ts)
				e.SetStatus(status.SysEx)
				e.SetPayload(append(bt, status.SysExEnd))
				res = append(res, e)
			default:
				// ignore
			}
		}
	}
	return res
}

// ToMessage converts a channel-voice event back into a sendable gomidi
// message. Returns false for meta, SysEx, and system events, which have
// no single-message equivalent on a live bus.
func ToMessage(e *event.Event) (gomidi.Message, bool) {
	ch := e.Channel()
	if status.IsNullChannel(ch) {
		ch = 0
	}
	switch {
	case e.IsNoteOff():
		return gomidi.NoteOff(ch, e.Note()), true
	case e.IsNoteOn():
		return gomidi.NoteOn(ch, e.Note(), e.Velocity()), true
	case e.IsController():
		return gomidi.ControlChange(ch, e.D0(), e.D1()), true
	case e.IsProgramChange():
		return gomidi.ProgramChange(ch, e.D0()), true
	case e.IsPitchbend():
		abs := uint16(e.D0()) | uint16(e.D1())<<7
		return gomidi.Pitchbend(ch, int16(abs)-8192), true
	case e.IsNote(): // remaining note status is aftertouch
		return gomidi.PolyAfterTouch(ch, e.Note(), e.D1()), true
	case status.MaskStatus(e.Status()) == status.ChannelPressure:
		return gomidi.AfterTouch(ch, e.D0()), true
	}
	return nil, false
}
