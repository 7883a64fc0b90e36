package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/amishk599/prepkit/internal/export"
	"github.com/amishk599/prepkit/internal/ingest"
	"github.com/amishk599/prepkit/internal/model"
	"github.com/amishk599/prepkit/internal/prep"
)

var (
	analyzeCompany string
	analyzeRole    string
	analyzeJDFile  string
	analyzeJD      string
	analyzeDryRun  bool
	analyzeJSON    bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a job description and save it to history",
	Long:  "Reads a job description (text or HTML) from --jd, --jd-file or stdin, prints the readiness report and records the analysis in history.",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeCompany, "company", "", "company name (optional)")
	analyzeCmd.Flags().StringVar(&analyzeRole, "role", "", "role title (optional)")
	analyzeCmd.Flags().StringVarP(&analyzeJDFile, "jd-file", "f", ingest.Stdin, "job description file, or - for stdin")
	analyzeCmd.Flags().StringVar(&analyzeJD, "jd", "", "job description text (overrides --jd-file)")
	analyzeCmd.Flags().BoolVar(&analyzeDryRun, "dry-run", false, "analyze without saving to history")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "print the entry as JSON instead of the text report")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)
	a := mustSetup(logger, analyzeDryRun)
	defer a.Close()

	jd := analyzeJD
	if jd == "" {
		var err error
		jd, err = ingest.ReadJD(analyzeJDFile, cmd.InOrStdin())
		if err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	out, err := a.service.Analyze(ctx, prep.Request{Company: analyzeCompany, Role: analyzeRole, JDText: jd})
	if err != nil {
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("cannot analyze: %s", verr.Reason)
		}
		return err
	}

	for _, w := range out.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	if !out.Saved {
		fmt.Fprintln(os.Stderr, "warning: analysis could not be saved to history")
	}

	if analyzeJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out.Entry)
	}

	report, err := export.Report(out.Entry)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), report)
	if !analyzeDryRun && out.Saved {
		fmt.Fprintf(cmd.OutOrStdout(), "\nSaved as %s. Run `prepkit review %s` to rate your skills.\n", out.Entry.ID, out.Entry.ID)
	}
	return nil
}
