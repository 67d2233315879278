package cmd

import (
	"fmt"

	"github.com/nfrund/marksweb/internal/domain"
	"github.com/spf13/cobra"
)

func newMarksCmd(a *cliApp) *cobra.Command {
	scores := make(map[string]*string, len(domain.Subjects))

	cmd := &cobra.Command{
		Use:   "marks",
		Short: "Submit marks and print the average and grade",
		RunE: func(cmd *cobra.Command, args []string) error {
			var record domain.MarksRecord
			for _, subject := range domain.Subjects {
				record.Set(subject, *scores[subject])
			}

			client, err := a.client()
			if err != nil {
				return err
			}
			result, err := client.SubmitMarks(cmd.Context(), record)
			if err != nil {
				printError(cmd.ErrOrStderr(), "Error submitting marks.")
				return errFailed
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render("Average: "+domain.FormatScore(result.Average)))
			fmt.Fprintln(out, titleStyle.Render("Grade: "+result.Grade))
			return nil
		},
	}
	for _, subject := range domain.Subjects {
		scores[subject] = cmd.Flags().String(subject, "", subject+" score")
	}
	return cmd
}
