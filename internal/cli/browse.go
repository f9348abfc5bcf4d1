package cli

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/enemdev/cli/internal/enem"
	"github.com/enemdev/cli/internal/errors"
	"github.com/spf13/cobra"
)

// noFilterOption is the extra choice offered before each filter list.
const noFilterOption = "(no filter)"

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Interactively explore exams and their questions",
	Long: `Browse walks the catalog interactively: pick an exam, inspect it, then
optionally drill into its questions with discipline and language filters
taken from the exam itself.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	client := newClient()

	exams, err := client.ListExams(ctx)
	if err != nil {
		return translateAPIError(err)
	}
	if len(exams) == 0 {
		return errors.NewNotFoundError("the exam catalog is empty")
	}

	labels, byLabel := examChoices(exams)
	if len(labels) == 0 {
		return errors.NewNotFoundError("the exam catalog has no usable records")
	}
	choice, err := selectOption("Which exam would you like to inspect?", labels, labels[0])
	if err != nil {
		return errors.NewGenericError("failed to read exam selection", err)
	}
	record := byLabel[choice]
	if err := printResult(cmd, record); err != nil {
		return err
	}

	drillDown, err := confirm("Browse this exam's questions?", true)
	if err != nil {
		return errors.NewGenericError("failed to read confirmation", err)
	}
	if !drillDown {
		return nil
	}

	params := url.Values{}
	if year, ok := enem.RecordYear(record); ok {
		params.Set("year", strconv.Itoa(year))
	}
	if err := askFilter(params, "discipline", "Filter by discipline?", record["disciplines"]); err != nil {
		return err
	}
	if err := askFilter(params, "language", "Filter by language?", record["languages"]); err != nil {
		return err
	}

	questions, err := client.ListQuestions(ctx, params)
	if err != nil {
		return translateAPIError(err)
	}
	return printResult(cmd, questions)
}

// askFilter offers the slugs found in list as a filter for key, defaulting to
// no filter at all. Lists the catalog does not provide are skipped silently.
func askFilter(params url.Values, key, message string, list any) error {
	labels, values := slugOptions(list)
	if len(labels) == 0 {
		return nil
	}

	choice, err := selectOption(message, append([]string{noFilterOption}, labels...), noFilterOption)
	if err != nil {
		return errors.NewGenericError("failed to read "+key+" selection", err)
	}
	if slug, ok := values[choice]; ok {
		params.Set(key, slug)
	}
	return nil
}

// examChoices builds the selectable label list for the catalog, keeping a
// lookup from label back to the underlying record. Entries that are not
// objects are skipped; duplicate labels get a positional suffix.
func examChoices(exams []any) ([]string, map[string]map[string]any) {
	labels := make([]string, 0, len(exams))
	byLabel := make(map[string]map[string]any, len(exams))
	for i, entry := range exams {
		record, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		label, _ := record["title"].(string)
		if label == "" {
			if year, ok := enem.RecordYear(record); ok {
				label = fmt.Sprintf("ENEM %d", year)
			} else {
				label = fmt.Sprintf("exam #%d", i+1)
			}
		}
		if _, taken := byLabel[label]; taken {
			label = fmt.Sprintf("%s (#%d)", label, i+1)
		}
		labels = append(labels, label)
		byLabel[label] = record
	}
	return labels, byLabel
}

// slugOptions extracts selectable labels and their slugs from a list shaped
// like the catalog's discipline and language entries, objects carrying a
// value slug and an optional display label.
func slugOptions(list any) ([]string, map[string]string) {
	entries, ok := list.([]any)
	if !ok {
		return nil, nil
	}
	var labels []string
	values := make(map[string]string, len(entries))
	for _, entry := range entries {
		record, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		value, ok := record["value"].(string)
		if !ok || value == "" {
			continue
		}
		label, _ := record["label"].(string)
		if label == "" {
			label = value
		}
		if _, taken := values[label]; taken {
			continue
		}
		labels = append(labels, label)
		values[label] = value
	}
	return labels, values
}
