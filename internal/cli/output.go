package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/enemdev/cli/internal/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// printResult writes value to the command's stdout in the configured output
// format. JSON keeps non-ASCII text readable instead of escaping it, since
// most catalog content is Portuguese.
func printResult(cmd *cobra.Command, value any) error {
	switch format := strings.ToLower(viper.GetString("output")); format {
	case "json", "":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(value); err != nil {
			return errors.NewGenericError("failed to encode result as JSON", err)
		}
		return nil
	case "yaml", "yml":
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		defer enc.Close()
		if err := enc.Encode(plainValue(value)); err != nil {
			return errors.NewGenericError("failed to encode result as YAML", err)
		}
		return nil
	default:
		return errors.NewGenericError(fmt.Sprintf("unsupported output format: %s", format), nil)
	}
}

// plainValue lowers json.Number values into ints and floats so the YAML
// encoder does not render them as quoted strings.
func plainValue(value any) any {
	switch v := value.(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n
		}
		if f, err := v.Float64(); err == nil {
			return f
		}
		return v.String()
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, val := range v {
			out[key] = plainValue(val)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, val := range v {
			out[i] = plainValue(val)
		}
		return out
	default:
		return value
	}
}
