package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aric5301/bookquiz/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		repo := st.AttemptRepo()

		accuracy, err := repo.QueryDeckAccuracy(ctx)
		if err != nil {
			return fmt.Errorf("query deck accuracy: %w", err)
		}
		if len(accuracy) == 0 {
			fmt.Println("No attempts recorded yet.")
			return nil
		}

		fmt.Println("Accuracy by deck")
		for _, rec := range accuracy {
			fmt.Printf("  %-40s %4d answered  %5.1f%%\n", rec.Deck, rec.Answered, rec.Accuracy()*100)
		}

		missed, err := repo.QueryMostMissed(ctx, 10)
		if err != nil {
			return fmt.Errorf("query most missed: %w", err)
		}
		if len(missed) > 0 {
			fmt.Println()
			fmt.Println("Most missed questions")
			for _, m := range missed {
				fmt.Printf("  %-40s %-24s missed %d of %d\n", m.Deck, m.QuestionID, m.Misses, m.Attempts)
			}
		}

		attempts, err := repo.QueryAttemptSummaries(ctx, 10)
		if err != nil {
			return fmt.Errorf("query attempts: %w", err)
		}
		if len(attempts) > 0 {
			fmt.Println()
			fmt.Println("Recent attempts")
			for _, a := range attempts {
				status := ""
				if !a.Completed {
					status = "  (abandoned)"
				}
				fmt.Printf("  %s  %-40s %d/%d correct%s\n",
					a.StartedAt.Local().Format("2006-01-02 15:04"),
					a.Deck, a.Correct, a.Answered, status)
			}
		}

		return nil
	},
}
