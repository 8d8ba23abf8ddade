package model

import (
	"github.com/quaverd/midievent/event"
	"github.com/quaverd/midievent/status"
)

// EventView is the serializable projection of an event, used by the HTTP
// surface and by recorded take files.
type EventView struct {
	Timestamp int64  `json:"timestamp"`
	Status    byte   `json:"status"`
	Channel   byte   `json:"channel"`
	D0        byte   `json:"d0"`
	D1        byte   `json:"d1"`
	Payload   []byte `json:"payload,omitempty"`
	Bus       byte   `json:"bus"`
	Rank      int    `json:"rank"`
	Kind      string `json:"kind"`
}

func FromEvent(e *event.Event) EventView {
	return EventView{
		Timestamp: int64(e.Timestamp()),
		Status:    e.Status(),
		Channel:   e.Channel(),
		D0:        e.D0(),
		D1:        e.D1(),
		Payload:   e.Payload(),
		Bus:       e.InputBus(),
		Rank:      e.Rank(),
		Kind:      kindOf(e),
	}
}

// ToEvent rebuilds an event from its view. Links are not carried; they
// belong to a specific slice and have to be remade by event.LinkNotes.
func (v EventView) ToEvent() event.Event {
	e := event.NewRaw(event.Pulse(v.Timestamp), v.Status, v.D0, v.D1)
	if e.IsMeta() {
		e.SetMetaStatus(v.Channel)
	} else if e.HasChannel() {
		e.SetChannel(v.Channel)
	}
	if len(v.Payload) > 0 {
		e.SetPayload(v.Payload)
	}
	e.SetInputBus(v.Bus)
	return e
}

func kindOf(e *event.Event) string {
	switch {
	case e.IsTempo():
		return "tempo"
	case e.IsMeta():
		return "meta"
	case e.IsSysEx():
		return "sysex"
	case e.IsNoteOn():
		return "note-on"
	case e.IsNoteOff():
		return "note-off"
	case e.IsController():
		return "control-change"
	case e.IsProgramChange():
		return "program-change"
	case e.IsPitchbend():
		return "pitch-wheel"
	case e.IsNote():
		return "aftertouch"
	case status.MaskStatus(e.Status()) == status.ChannelPressure && e.HasChannel():
		return "channel-pressure"
	default:
		return "system"
	}
}
