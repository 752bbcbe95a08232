package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aric5301/bookquiz/internal/app"
	"github.com/Aric5301/bookquiz/internal/deck"
	"github.com/Aric5301/bookquiz/internal/store"
)

// runApp opens the store, loads the decks, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	decksDir := resolveDecksDir(cmd)
	decks, err := deck.LoadDir(decksDir)
	if err != nil {
		return fmt.Errorf("load decks from %s: %w", decksDir, err)
	}

	shuffle, _ := cmd.Flags().GetBool("shuffle")

	return app.Run(app.Options{
		Decks:    decks,
		Attempts: st.AttemptRepo(),
		Shuffle:  shuffle,
	})
}
