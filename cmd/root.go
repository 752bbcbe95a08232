package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Aric5301/bookquiz/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "bookquiz",
	Short: "Quiz yourself on book chapters from the terminal",
	Long:  "Bookquiz runs chapter quizzes (multiple choice and program tracing) from deck files and tracks your accuracy over time.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides BOOKQUIZ_DB env var)")
	rootCmd.PersistentFlags().String("decks", "", "Directory of deck files (overrides BOOKQUIZ_DECKS env var; default ./decks)")
	rootCmd.Flags().Bool("shuffle", false, "Randomize multiple-choice answer order")

	rootCmd.AddCommand(vetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then BOOKQUIZ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveDecksDir returns the deck directory using --decks flag, then
// BOOKQUIZ_DECKS env var, then ./decks.
func resolveDecksDir(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("decks"); p != "" {
		return p
	}
	if p := os.Getenv("BOOKQUIZ_DECKS"); p != "" {
		return p
	}
	return "decks"
}
