package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amishk599/prepkit/internal/export"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export <id|latest>",
	Short: "Export the plan, checklist, questions or full report as plain text",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "report", "one of: "+strings.Join(export.Formats, ", "))
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)
	a := mustSetup(logger, false)
	defer a.Close()

	entry, err := a.service.Load(entryArg(args))
	if err != nil {
		return notFoundHint(err)
	}

	text, err := export.Render(exportFormat, entry)
	if err != nil {
		return err
	}

	if exportOut == "" {
		fmt.Fprint(cmd.OutOrStdout(), text)
		return nil
	}
	if err := os.WriteFile(exportOut, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	logger.Info("exported", "id", entry.ID, "format", exportFormat, "path", exportOut)
	return nil
}
