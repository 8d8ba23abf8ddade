package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "midievent",
	Short: "Sequencer MIDI event toolbox",
	Long:  `Inspect, filter, humanize, record, and serve sequencer MIDI events.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
