package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/enemdev/cli/internal/enem"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Helper to point the CLI at a test server, restoring viper state afterwards
func setupTest(t *testing.T, baseURL string) {
	t.Helper()
	viper.Set("base_url", baseURL)
	t.Cleanup(viper.Reset)
}

// Helper to clear flag state between run invocations, since command
// definitions are package globals
func resetCommandFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			f.Value.Set(f.DefValue)
			f.Changed = false
		}
	})
}

// Helper to keep initConfig away from any real config file on the machine
func pointConfigAway(t *testing.T) {
	t.Helper()
	cfgFile = filepath.Join(t.TempDir(), "absent.yaml")
	t.Cleanup(func() { cfgFile = "" })
}

// Test that the environment override feeds the base URL
func TestInitConfig_EnvOverride(t *testing.T) {
	pointConfigAway(t)
	t.Setenv("ENEM_API_BASE", "http://env.example/v2")
	t.Cleanup(viper.Reset)

	initConfig()

	if got := viper.GetString("base_url"); got != "http://env.example/v2" {
		t.Errorf("base_url = %q, want the ENEM_API_BASE value", got)
	}
}

// Test the built-in default base URL
func TestInitConfig_DefaultBaseURL(t *testing.T) {
	pointConfigAway(t)
	t.Setenv("ENEM_API_BASE", "")
	t.Cleanup(viper.Reset)

	initConfig()

	if got := viper.GetString("base_url"); got != enem.DefaultBaseURL {
		t.Errorf("base_url = %q, want %q", got, enem.DefaultBaseURL)
	}
}

// Test that a config file in the working directory is picked up
func TestInitConfig_ReadsConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, ".enem.yaml"), []byte("base_url: http://config.example/v1\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	originalDir, _ := os.Getwd()
	defer os.Chdir(originalDir)
	os.Chdir(tmpDir)

	t.Setenv("ENEM_API_BASE", "")
	t.Cleanup(viper.Reset)

	initConfig()

	if got := viper.GetString("base_url"); got != "http://config.example/v1" {
		t.Errorf("base_url = %q, want the config file value", got)
	}
}

// Test that the environment override beats the config file
func TestInitConfig_EnvBeatsConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, ".enem.yaml"), []byte("base_url: http://config.example/v1\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	originalDir, _ := os.Getwd()
	defer os.Chdir(originalDir)
	os.Chdir(tmpDir)

	t.Setenv("ENEM_API_BASE", "http://env.example/v2")
	t.Cleanup(viper.Reset)

	initConfig()

	if got := viper.GetString("base_url"); got != "http://env.example/v2" {
		t.Errorf("base_url = %q, want the environment override", got)
	}
}

// Test that a .env file can supply the environment override
func TestInitConfig_DotEnvFile(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, ".env"), []byte("ENEM_API_BASE=http://dotenv.example/v1\n"), 0644); err != nil {
		t.Fatalf("Failed to write .env: %v", err)
	}

	originalDir, _ := os.Getwd()
	defer os.Chdir(originalDir)
	os.Chdir(tmpDir)

	// godotenv never overrides variables that are already set, so make sure
	// this one is absent going in and scrubbed again afterwards.
	if orig, ok := os.LookupEnv("ENEM_API_BASE"); ok {
		os.Unsetenv("ENEM_API_BASE")
		t.Cleanup(func() { os.Setenv("ENEM_API_BASE", orig) })
	}
	t.Cleanup(func() { os.Unsetenv("ENEM_API_BASE") })
	t.Cleanup(viper.Reset)

	initConfig()

	if got := viper.GetString("base_url"); got != "http://dotenv.example/v1" {
		t.Errorf("base_url = %q, want the .env value", got)
	}
}

// Test that unknown commands are rejected
func TestExecute_UnknownCommand(t *testing.T) {
	t.Cleanup(viper.Reset)

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	defer rootCmd.SetOut(nil)
	defer rootCmd.SetErr(nil)
	rootCmd.SetArgs([]string{"frobnicate"})
	defer rootCmd.SetArgs([]string{})

	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("Execute() error = nil, want unknown command failure")
	}
	if !strings.Contains(err.Error(), "unknown command") {
		t.Errorf("Execute() error = %v, want unknown command message", err)
	}
}

// Test that commands with mandatory flags reject bare invocations
func TestExecute_RequiredFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		cmd  *cobra.Command
	}{
		{"exam needs year", []string{"exam"}, examCmd},
		{"question needs id", []string{"question"}, questionCmd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(viper.Reset)
			defer resetCommandFlags(tt.cmd)

			out := new(bytes.Buffer)
			rootCmd.SetOut(out)
			rootCmd.SetErr(out)
			defer rootCmd.SetOut(nil)
			defer rootCmd.SetErr(nil)
			rootCmd.SetArgs(tt.args)
			defer rootCmd.SetArgs([]string{})

			err := rootCmd.Execute()
			if err == nil {
				t.Fatal("Execute() error = nil, want missing flag failure")
			}
			if !strings.Contains(err.Error(), "required flag") {
				t.Errorf("Execute() error = %v, want required flag message", err)
			}
		})
	}
}
