package cli

import (
	"fmt"

	"github.com/enemdev/cli/internal/errors"
	"github.com/spf13/cobra"
)

var examsCmd = &cobra.Command{
	Use:   "exams",
	Short: "List every exam in the catalog",
	Args:  cobra.NoArgs,
	RunE:  runExams,
}

var (
	examYear int

	examCmd = &cobra.Command{
		Use:   "exam",
		Short: "Show the exam held in a specific year",
		Args:  cobra.NoArgs,
		RunE:  runExam,
	}
)

func init() {
	rootCmd.AddCommand(examsCmd)

	rootCmd.AddCommand(examCmd)
	examCmd.Flags().IntVar(&examYear, "year", 0, "exam year, e.g. 2020")
	examCmd.MarkFlagRequired("year")
}

func runExams(cmd *cobra.Command, args []string) error {
	exams, err := newClient().ListExams(cmd.Context())
	if err != nil {
		return translateAPIError(err)
	}
	return printResult(cmd, exams)
}

func runExam(cmd *cobra.Command, args []string) error {
	record, ok, err := newClient().ExamByYear(cmd.Context(), examYear)
	if err != nil {
		return translateAPIError(err)
	}
	if !ok {
		return errors.NewNotFoundError(fmt.Sprintf("no exam found for year %d", examYear))
	}
	return printResult(cmd, record)
}
