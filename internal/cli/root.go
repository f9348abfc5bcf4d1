package cli

import (
	"log/slog"
	"os"

	"github.com/enemdev/cli/internal/enem"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool

	rootCmd = &cobra.Command{
		Use:   "enem",
		Short: "Query the public ENEM exam catalog",
		Long: `enem is a command-line client for the public ENEM exam catalog at
https://api.enem.dev. It lists the available exams, looks up the exam of
a specific year, and browses questions with optional filters.

Results print as indented JSON by default; use --output yaml for YAML.
The API base URL can be overridden with --base-url, the ENEM_API_BASE
environment variable, or a .enem.yaml config file.`,
		SilenceUsage: true,
	}
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .enem.yaml in the current or home directory)")
	rootCmd.PersistentFlags().String("base-url", enem.DefaultBaseURL, "API base URL")
	rootCmd.PersistentFlags().StringP("output", "o", "json", "output format (json or yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	viper.BindPFlag("base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	// A .env file in the working directory feeds the lookups below without
	// clobbering variables that are already set.
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded .env file")
	}

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for .enem.yaml in the working directory, then home
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigType("yaml")
		viper.SetConfigName(".enem")
	}

	viper.SetDefault("base_url", enem.DefaultBaseURL)
	viper.SetDefault("output", "json")
	viper.BindEnv("base_url", "ENEM_API_BASE")

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("using config file", "path", viper.ConfigFileUsed())
	}
}
