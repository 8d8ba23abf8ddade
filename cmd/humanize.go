package cmd

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/quaverd/midievent/event"
)

var (
	humanizeJitter    int
	humanizeRandomize int
	humanizeQuantize  int
	humanizeTighten   int
	humanizeSeqLen    int64
	humanizeSeed      int64
)

func init() {
	humanizeCmd.Flags().IntVar(&humanizeJitter, "jitter", 0, "timestamp jitter range in ticks")
	humanizeCmd.Flags().IntVar(&humanizeRandomize, "randomize", 0, "data byte perturbation range")
	humanizeCmd.Flags().IntVar(&humanizeQuantize, "quantize", 0, "snap ticks for full quantize")
	humanizeCmd.Flags().IntVar(&humanizeTighten, "tighten", 0, "snap ticks for half-way tighten")
	humanizeCmd.Flags().Int64Var(&humanizeSeqLen, "seq-length", 0, "pattern length in ticks (0 = one past the last event)")
	humanizeCmd.Flags().Int64Var(&humanizeSeed, "seed", 1, "random seed")
	rootCmd.AddCommand(humanizeCmd)
}

var humanizeCmd = &cobra.Command{
	Use:   "humanize <file.mid|file.take>",
	Short: "Applies timing/velocity transforms to a file's events",
	Long:  `Applies timing/velocity transforms to a file's events`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		humanize(args[0])
	},
}

func humanize(path string) {
	evs, err := loadEvents(path)
	if err != nil {
		panic("Could not load events: " + err.Error())
	}
	seqLen := event.Pulse(humanizeSeqLen)
	if seqLen <= 0 {
		seqLen = seqLength(evs)
	}

	rng := rand.New(rand.NewSource(humanizeSeed))
	changed := 0
	for i := range evs {
		e := &evs[i]
		if humanizeQuantize > 0 && e.Quantize(humanizeQuantize, seqLen) {
			changed++
		}
		if humanizeTighten > 0 && e.Tighten(humanizeTighten, seqLen) {
			changed++
		}
		if humanizeJitter > 0 && e.Jitter(rng, humanizeJitter, seqLen) {
			changed++
		}
		if humanizeRandomize > 0 && !e.IsNoteOffRecorded() &&
			e.Randomize(rng, humanizeRandomize) {
			changed++
		}
	}
	event.Sort(evs)
	for i := range evs {
		fmt.Println(evs[i].String())
	}
	fmt.Printf("%v changes over %v events\n", changed, len(evs))
}

func seqLength(evs []event.Event) event.Pulse {
	var max event.Pulse
	for i := range evs {
		if evs[i].Timestamp() > max {
			max = evs[i].Timestamp()
		}
	}
	return max + 1
}
