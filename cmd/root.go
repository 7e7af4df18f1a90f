package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kentro",
	Short: "Kentro - argumentative proposition centrality ranking",
	Long: `Kentro ranks argumentative propositions from AIF-encoded debate corpora
by centrality and evaluates similarity-graph rankings against the original
support/conflict argument structure.`,
}

func Execute() error {
	return rootCmd.Execute()
}
