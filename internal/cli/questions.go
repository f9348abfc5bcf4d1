package cli

import (
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	questionsYear       int
	questionsDiscipline string
	questionsLanguage   string
	questionsPage       int

	questionsCmd = &cobra.Command{
		Use:   "questions",
		Short: "List questions, optionally filtered",
		Long: `List questions from the catalog. Filters are sent to the API only when
explicitly provided, so the server applies its own defaults otherwise.`,
		Args: cobra.NoArgs,
		RunE: runQuestions,
	}
)

var (
	questionID string

	questionCmd = &cobra.Command{
		Use:   "question",
		Short: "Show a single question by identifier",
		Args:  cobra.NoArgs,
		RunE:  runQuestion,
	}
)

func init() {
	rootCmd.AddCommand(questionsCmd)
	questionsCmd.Flags().IntVar(&questionsYear, "year", 0, "filter by exam year")
	questionsCmd.Flags().StringVar(&questionsDiscipline, "discipline", "", "filter by discipline slug, e.g. matematica")
	questionsCmd.Flags().StringVar(&questionsLanguage, "language", "", "filter by language slug, e.g. ingles")
	questionsCmd.Flags().IntVar(&questionsPage, "page", 0, "result page to fetch")

	rootCmd.AddCommand(questionCmd)
	questionCmd.Flags().StringVar(&questionID, "id", "", "question identifier")
	questionCmd.MarkFlagRequired("id")
}

// questionFilters collects only the filters the user explicitly set. An
// untouched flag stays out of the query string entirely; an explicit zero or
// empty value is forwarded as-is.
func questionFilters(cmd *cobra.Command) url.Values {
	params := url.Values{}
	if cmd.Flags().Changed("year") {
		params.Set("year", strconv.Itoa(questionsYear))
	}
	if cmd.Flags().Changed("discipline") {
		params.Set("discipline", questionsDiscipline)
	}
	if cmd.Flags().Changed("language") {
		params.Set("language", questionsLanguage)
	}
	if cmd.Flags().Changed("page") {
		params.Set("page", strconv.Itoa(questionsPage))
	}
	return params
}

func runQuestions(cmd *cobra.Command, args []string) error {
	questions, err := newClient().ListQuestions(cmd.Context(), questionFilters(cmd))
	if err != nil {
		return translateAPIError(err)
	}
	return printResult(cmd, questions)
}

func runQuestion(cmd *cobra.Command, args []string) error {
	question, err := newClient().GetQuestion(cmd.Context(), questionID)
	if err != nil {
		return translateAPIError(err)
	}
	return printResult(cmd, question)
}
