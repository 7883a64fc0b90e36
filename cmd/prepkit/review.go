package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amishk599/prepkit/internal/review"
)

var reviewCmd = &cobra.Command{
	Use:   "review [id]",
	Short: "Rate your skills interactively (TUI)",
	Long:  "Opens the split-pane review for one analysis. Without an id, shows the history picker first.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runReview,
}

func init() {
	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, args []string) error {
	// Any log output while the alt-screen is active corrupts the display.
	a := mustSetup(discardLogger(), false)
	defer a.Close()

	save := review.SaveFunc(a.service.Save)

	if len(args) == 1 {
		entry, err := a.service.Load(entryArg(args))
		if err != nil {
			return notFoundHint(err)
		}
		_, _, err = review.RunReview(entry, save)
		return err
	}

	for {
		entries, corrupted := a.service.History()
		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No analyses yet. Run `prepkit analyze` to create one.")
			return nil
		}

		choice, err := review.RunHistoryPicker(entries, corrupted)
		if err != nil {
			return fmt.Errorf("picker: %w", err)
		}
		if choice < 0 {
			return nil
		}

		_, wantQuit, err := review.RunReview(entries[choice], save)
		if err != nil {
			return fmt.Errorf("review: %w", err)
		}
		if wantQuit {
			return nil
		}
		// else: loop → back to picker
	}
}
