package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amishk599/prepkit/internal/release"
)

var shipCmd = &cobra.Command{
	Use:   "ship",
	Short: "Mark the release as shipped (requires a complete checklist)",
	RunE:  runShip,
}

func init() {
	rootCmd.AddCommand(shipCmd)
}

func runShip(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)
	a := mustSetup(logger, false)
	defer a.Close()

	out := cmd.OutOrStdout()
	if a.checklist.Shipped() {
		fmt.Fprintln(out, "Already shipped.")
		return nil
	}

	if err := a.checklist.Ship(); err != nil {
		if errors.Is(err, release.ErrShipLocked) {
			fmt.Fprintln(out, "Locked: complete every item in `prepkit checklist` first.")
		}
		return err
	}
	fmt.Fprintln(out, "Shipped.")
	return nil
}
