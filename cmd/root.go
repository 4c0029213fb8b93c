package cmd

import (
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/minhvu/persona/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "persona",
	Short: "Personality assessments in your terminal",
	Long:  "Persona — terminal app for taking MBTI and DISC personality assessments, with per-answer saving and resumable sessions.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Optional .env for local overrides; absence is not an error.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().String("data", "", "Path to data directory (overrides PERSONA_DATA env var)")

	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDataDir returns the data directory using --data flag (highest
// priority), then PERSONA_DATA env var, then the default XDG path.
func resolveDataDir(cmd *cobra.Command) (string, error) {
	if d, _ := cmd.Flags().GetString("data"); d != "" {
		return d, store.EnsureDir(d)
	}
	return store.DefaultDataDir()
}

// paths inside the data directory
func usersPath(dir string) string {
	return filepath.Join(dir, "users.json")
}

func prefsPath(dir string) string {
	return filepath.Join(dir, "prefs.json")
}

func dbPath(dir string) string {
	return filepath.Join(dir, "answers.db")
}
