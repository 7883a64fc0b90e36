package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/amishk599/prepkit/internal/model"
	"github.com/amishk599/prepkit/internal/prep"
)

var confidenceCmd = &cobra.Command{
	Use:   "confidence",
	Short: "Mark skills of an analysis as known or to practice",
}

var confidenceSetCmd = &cobra.Command{
	Use:   "set <id|latest> <skill> <know|practice>",
	Short: "Set the confidence for one skill",
	Args:  cobra.ExactArgs(3),
	RunE:  runConfidenceSet,
}

var confidenceToggleCmd = &cobra.Command{
	Use:   "toggle <id|latest> <skill>",
	Short: "Flip one skill between know and practice",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfidenceToggle,
}

func init() {
	confidenceCmd.AddCommand(confidenceSetCmd, confidenceToggleCmd)
	rootCmd.AddCommand(confidenceCmd)
}

func runConfidenceSet(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)
	a := mustSetup(logger, false)
	defer a.Close()

	out, err := a.service.SetConfidence(entryArg(args[:1]), args[1], model.Confidence(args[2]))
	if err != nil {
		return notFoundHint(err)
	}
	printConfidence(cmd, out, args[1])
	return nil
}

func runConfidenceToggle(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)
	a := mustSetup(logger, false)
	defer a.Close()

	out, err := a.service.ToggleConfidence(entryArg(args[:1]), args[1])
	if err != nil {
		return notFoundHint(err)
	}
	printConfidence(cmd, out, args[1])
	return nil
}

func printConfidence(cmd *cobra.Command, out prep.Outcome, skill string) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s  (score %d, base %d)\n",
		skill, out.Entry.SkillConfidenceMap[skill], out.Entry.FinalScore, out.Entry.BaseScore)
	if !out.Saved {
		fmt.Fprintln(os.Stderr, "warning: change could not be saved")
	}
}
