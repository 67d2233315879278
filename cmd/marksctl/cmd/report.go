package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/nfrund/marksweb/internal/domain"
	"github.com/nfrund/marksweb/internal/export"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newReportCmd(a *cliApp) *cobra.Command {
	var xlsxPath string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the student report or export it to Excel",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			report, err := client.StudentReport(cmd.Context())
			if err != nil {
				printError(cmd.ErrOrStderr(), "Could not load report.")
				return errFailed
			}

			if xlsxPath != "" {
				if err := writeXLSX(a.fs, xlsxPath, report); err != nil {
					return err
				}
				printSuccess(cmd.OutOrStdout(), "Report written to "+xlsxPath)
				return nil
			}

			writeReport(cmd.OutOrStdout(), report)
			return nil
		},
	}
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "write the report to this .xlsx file instead of printing it")
	return cmd
}

// writeXLSX saves the workbook to path. The file is only reported written
// once Close has succeeded.
func writeXLSX(fs afero.Fs, path string, report *domain.Report) error {
	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := export.WriteReport(f, report); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func writeReport(w io.Writer, r *domain.Report) {
	if r.Empty() {
		msg := r.Message
		if msg == "" {
			msg = "No marks found."
		}
		fmt.Fprintln(w, mutedStyle.Render(msg))
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-12s %6s  %s\n", "Subject", "Score", "Grade")
	for _, m := range r.Marks {
		fmt.Fprintf(&b, "%-12s %6s  %s\n", m.Subject, domain.FormatScore(m.Score), m.Grade)
	}
	fmt.Fprintf(&b, "\nTotal: %s\n", domain.FormatScore(r.TotalScore))
	fmt.Fprintf(&b, "Percentage: %s%%\n", domain.FormatScore(r.Percentage))
	fmt.Fprintf(&b, "Overall grade: %s", r.OverallGrade)

	fmt.Fprintln(w, titleStyle.Render(r.StudentName))
	fmt.Fprintln(w, boxStyle.Render(b.String()))
}
