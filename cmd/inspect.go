package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/quaverd/midievent/event"
	"github.com/quaverd/midievent/midi"
	"github.com/quaverd/midievent/model"
	"github.com/quaverd/midievent/util"
)

var inspectNotes bool

func init() {
	inspectCmd.Flags().BoolVar(&inspectNotes, "notes", false, "print linked note pairs only")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid|file.take>",
	Short: "Prints a file's events in playback order",
	Long:  `Prints a file's events in playback order`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		inspect(args[0])
	},
}

func inspect(path string) {
	evs, err := loadEvents(path)
	if err != nil {
		panic("Could not load events: " + err.Error())
	}
	pairs := event.LinkNotes(evs)
	for i := range evs {
		e := &evs[i]
		if inspectNotes {
			if e.IsNoteOn() {
				fmt.Println(e.NoteString(evs))
			}
			continue
		}
		fmt.Println(e.String())
	}
	fmt.Printf("%v events, %v note pairs\n", len(evs), pairs)
}

// loadEvents reads a MIDI file, or a .take file written by record, and
// returns its events sorted into deterministic playback order.
func loadEvents(path string) ([]event.Event, error) {
	var evs []event.Event
	if filepath.Ext(path) == ".take" {
		views, err := util.ReadGob[[]model.EventView](path)
		if err != nil {
			return nil, err
		}
		for _, v := range views {
			evs = append(evs, v.ToEvent())
		}
	} else {
		s, err := midi.ReadFile(path)
		if err != nil {
			return nil, err
		}
		evs = midi.FromSMF(s)
	}
	event.Sort(evs)
	return evs, nil
}
