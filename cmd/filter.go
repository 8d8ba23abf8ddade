package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quaverd/midievent/status"
)

var (
	filterKind string
	filterCC   int
	filterEx   bool
)

// Requestable status families by flag name. Tempo requests go through
// the meta machinery, so "tempo" is handled separately below.
var kindToStatus = map[string]byte{
	"note-on":          status.NoteOn,
	"note-off":         status.NoteOff,
	"aftertouch":       status.Aftertouch,
	"cc":               status.ControlChange,
	"program":          status.ProgramChange,
	"channel-pressure": status.ChannelPressure,
	"pitch":            status.PitchWheel,
}

func init() {
	filterCmd.Flags().StringVar(&filterKind, "kind", "note-on", "status family to match")
	filterCmd.Flags().IntVar(&filterCC, "cc", 0, "controller number, for --kind=cc")
	filterCmd.Flags().BoolVar(&filterEx, "ex", false, "use the exact-status matching rule")
	rootCmd.AddCommand(filterCmd)
}

var filterCmd = &cobra.Command{
	Use:   "filter <file.mid|file.take>",
	Short: "Prints the events matching a status family",
	Long:  `Prints the events matching a status family`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		filter(args[0])
	},
}

func filter(path string) {
	st, ok := kindToStatus[filterKind]
	if !ok {
		panic("Unknown kind: " + filterKind)
	}
	evs, err := loadEvents(path)
	if err != nil {
		panic("Could not load events: " + err.Error())
	}
	matched := 0
	for i := range evs {
		e := &evs[i]
		var want bool
		if filterEx {
			want = e.IsDesiredEx(st, byte(filterCC))
		} else {
			want = e.IsDesired(st, byte(filterCC))
		}
		if want {
			fmt.Println(e.String())
			matched++
		}
	}
	fmt.Printf("%v of %v events matched\n", matched, len(evs))
}
