package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored matches",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	matches, err := db.ListMatches()
	if err != nil {
		return fmt.Errorf("list matches: %w", err)
	}
	if len(matches) == 0 {
		fmt.Fprintln(os.Stdout, "No matches stored yet. Run 'vbmetrics import <scout.csv>' to add one.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-20s  %-10s  %-24s  %-24s  %s\n",
		"MATCH", "DAY", "HOME", "VISITING", "ACTIONS")
	fmt.Fprintf(os.Stdout, "%-20s  %-10s  %-24s  %-24s  %s\n",
		"────────────────────", "──────────", "────────────────────────", "────────────────────────", "───────")
	for _, m := range matches {
		fmt.Fprintf(os.Stdout, "%-20s  %-10s  %-24s  %-24s  %7d\n",
			m.ID, m.Day, m.HomeTeam, m.VisitingTeam, m.ActionCount)
	}
	return nil
}
