package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmolinar/cubesim/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded solve sessions",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 20, "Maximum number of sessions to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessions, err := storage.NewSessionRepository(db).List(historyLimit)
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		fmt.Println("No recorded sessions")
		return nil
	}

	for _, s := range sessions {
		fmt.Printf("%s  %-9s  depth<=%d  %s\n",
			s.CreatedAt.Local().Format(time.DateTime), s.Outcome, s.MaxDepth, s.ScrambleText)
		if s.SolutionText != nil {
			fmt.Printf("%24s-> %s (%d moves)\n", "", *s.SolutionText, *s.SolutionDepth)
		}
	}
	return nil
}
