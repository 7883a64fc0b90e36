package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amishk599/prepkit/internal/export"
	"github.com/amishk599/prepkit/internal/model"
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Print the full report for an analysis (latest when id is omitted)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)
	a := mustSetup(logger, false)
	defer a.Close()

	entry, err := a.service.Load(entryArg(args))
	if err != nil {
		return notFoundHint(err)
	}

	report, err := export.Report(entry)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), report)
	return nil
}

// entryArg maps an optional id argument ("latest" or omitted means newest).
func entryArg(args []string) string {
	if len(args) == 0 || args[0] == "latest" {
		return ""
	}
	return args[0]
}

func notFoundHint(err error) error {
	if errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("%w (run `prepkit history` to list saved analyses)", err)
	}
	return err
}
