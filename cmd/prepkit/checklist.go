package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amishk599/prepkit/internal/release"
)

var checklistCmd = &cobra.Command{
	Use:   "checklist",
	Short: "Show the pre-ship verification checklist",
	RunE:  runChecklist,
}

var checklistToggleCmd = &cobra.Command{
	Use:   "toggle <item-id>",
	Short: "Check or uncheck one item (t1..t10)",
	Args:  cobra.ExactArgs(1),
	RunE:  runChecklistToggle,
}

var checklistResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Uncheck every item",
	RunE:  runChecklistReset,
}

func init() {
	checklistCmd.AddCommand(checklistToggleCmd, checklistResetCmd)
	rootCmd.AddCommand(checklistCmd)
}

func runChecklist(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)
	a := mustSetup(logger, false)
	defer a.Close()

	out := cmd.OutOrStdout()
	state := a.checklist.State()
	for _, it := range release.Items {
		mark := " "
		if state[it.ID] {
			mark = "x"
		}
		fmt.Fprintf(out, "[%s] %-4s %s\n", mark, it.ID, it.Label)
		fmt.Fprintf(out, "         %s\n", it.Hint)
	}

	passed := a.checklist.Passed()
	fmt.Fprintf(out, "\nTests Passed: %d / %d\n", passed, len(release.Items))
	if passed < len(release.Items) {
		fmt.Fprintln(out, "Fix issues before shipping.")
	}
	return nil
}

func runChecklistToggle(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)
	a := mustSetup(logger, false)
	defer a.Close()

	on, err := a.checklist.Toggle(args[0])
	if err != nil {
		return err
	}
	state := "unchecked"
	if on {
		state = "checked"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%d / %d passed)\n", args[0], state, a.checklist.Passed(), len(release.Items))
	return nil
}

func runChecklistReset(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)
	a := mustSetup(logger, false)
	defer a.Close()

	if err := a.checklist.Reset(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Checklist reset.")
	return nil
}
