package event

// LinkNotes pairs note-ons with note-offs over a sorted, caller-owned
// slice. Each unlinked note-on is linked to the nearest following
// unlinked note-off with the same channel and note number, and the links
// are set symmetrically by index. Existing links are left alone, so run
// ClearLinks first after a bulk copy. Returns the number of pairs made.
func LinkNotes(evs []Event) int {
	linked := 0
	for i := range evs {
		on := &evs[i]
		if !on.IsNoteOn() || on.IsLinked() {
			continue
		}
		for j := i + 1; j < len(evs); j++ {
			off := &evs[j]
			if off.IsNoteOff() && !off.IsLinked() &&
				off.Note() == on.Note() && off.Channel() == on.Channel() {
				on.LinkTo(j)
				off.LinkTo(i)
				linked++
				break
			}
		}
	}
	return linked
}

// ClearLinks unlinks every event in the slice.
func ClearLinks(evs []Event) {
	for i := range evs {
		evs[i].Unlink()
	}
}
