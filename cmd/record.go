package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bep/debounce"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver

	"github.com/quaverd/midievent/event"
	"github.com/quaverd/midievent/model"
	"github.com/quaverd/midievent/util"
)

// Live timestamps arrive in milliseconds; map them to pulses assuming
// 120 BPM (500 ms per quarter note) at this resolution.
const recordPPQN = 192

var (
	recordPort    int
	recordSeconds int
)

func init() {
	recordCmd.Flags().IntVar(&recordPort, "port", 0, "MIDI input port number")
	recordCmd.Flags().IntVar(&recordSeconds, "seconds", 30, "how long to listen")
	rootCmd.AddCommand(recordCmd)
}

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Records events from a MIDI input port into a take file",
	Long:  `Records events from a MIDI input port into a take file`,
	Run: func(cmd *cobra.Command, args []string) {
		record()
	},
}

func takesDir() string {
	path := os.Getenv("MIDIEVENT_TAKES")
	if path != "" {
		return path
	}
	return "."
}

func record() {
	defer gomidi.CloseDriver()
	in, err := gomidi.InPort(recordPort)
	if err != nil {
		fmt.Printf("can't find input port %v\n", recordPort)
		return
	}

	var take []model.EventView
	held := make(map[uint8]bool)
	deb := debounce.New(50 * time.Millisecond)
	printHeld := func() {
		fmt.Printf("held notes: %v\n", util.GetKeys(held))
	}

	stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
		ts := event.Pulse(int64(timestampms) * recordPPQN / 500)
		e := event.New()
		// Keep the incoming channel in the status byte so per-channel
		// filtering still works downstream; zero-velocity note-ons are
		// stored as note-offs.
		if !e.SetMidiEvent(ts, msg.Bytes(), 0, true) {
			return // drop malformed input, keep listening
		}
		e.SetInputBus(byte(recordPort))
		if e.IsNoteOn() {
			held[e.Note()] = true
			deb(printHeld)
		} else if e.IsNoteOff() {
			delete(held, e.Note())
			deb(printHeld)
		}
		take = append(take, model.FromEvent(&e))
	}, gomidi.UseSysEx())
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	time.Sleep(time.Duration(recordSeconds) * time.Second)
	stop()

	if len(take) == 0 {
		fmt.Println("nothing recorded")
		return
	}
	filename := filepath.Join(takesDir(), uuid.New().String()+".take")
	if err := util.WriteGob(filename, take); err != nil {
		panic("Could not write take: " + err.Error())
	}
	fmt.Printf("wrote %v events to %v\n", len(take), filename)
}
