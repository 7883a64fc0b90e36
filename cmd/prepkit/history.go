package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amishk599/prepkit/internal/export"
)

var clearYes bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved analyses, most recent first",
	RunE:  runHistory,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every saved analysis",
	RunE:  runHistoryClear,
}

func init() {
	historyClearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "confirm deletion")
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)
	a := mustSetup(logger, false)
	defer a.Close()

	entries, corrupted := a.service.History()
	out := cmd.OutOrStdout()

	if corrupted == 1 {
		fmt.Fprintln(out, "Note: one saved entry could not be loaded and was skipped.")
	} else if corrupted > 1 {
		fmt.Fprintf(out, "Note: %d saved entries could not be loaded and were skipped.\n", corrupted)
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, "No analyses yet. Run `prepkit analyze` to create one.")
		return nil
	}

	fmt.Fprintf(out, "%-36s  %-16s  %-20s  %-20s  %s\n", "ID", "Created", "Company", "Role", "Score")
	fmt.Fprintln(out, strings.Repeat("─", 108))
	for _, e := range entries {
		fmt.Fprintf(out, "%-36s  %-16s  %-20s  %-20s  %d\n",
			e.ID,
			e.CreatedAt.Local().Format("2006-01-02 15:04"),
			truncate(orDash(e.Company), 20),
			truncate(orDash(e.Role), 20),
			e.FinalScore,
		)
	}
	fmt.Fprintf(out, "\nTotal: %d analyses\n", len(entries))
	return nil
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	if !clearYes {
		return fmt.Errorf("refusing to delete history without --yes")
	}

	logger := setupLogger(debug)
	a := mustSetup(logger, false)
	defer a.Close()

	if err := a.history.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
	return nil
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return export.Placeholder
	}
	return s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
