package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete attempt history",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Printf("This deletes %s and all attempt history.\nRe-run with --yes to confirm.\n", dbPath)
			return nil
		}

		if err := os.Remove(dbPath); err != nil {
			if os.IsNotExist(err) {
				fmt.Println("No history to delete.")
				return nil
			}
			return fmt.Errorf("delete %s: %w", dbPath, err)
		}
		// WAL sidecar files, if present.
		_ = os.Remove(dbPath + "-wal")
		_ = os.Remove(dbPath + "-shm")
		fmt.Println("Attempt history deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}
