package ui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/timewheel/internal/selection"
)

func (a *App) historyCmd() *cobra.Command {
	var limit int
	var noColor bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent selections",
		Long: `Display the most recent committed selections, newest first.

Example:
  timewheel history --limit 5`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			if limit <= 0 {
				return fmt.Errorf("limit must be positive, got %d", limit)
			}

			repo, err := a.repository()
			if err != nil {
				return err
			}
			sels, err := repo.ListSelections(context.Background(), limit)
			if err != nil {
				return fmt.Errorf("fetching selections: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(sels) == 0 {
				fmt.Fprintln(out, "No selections yet.")
				return nil
			}
			printHistory(out, sels)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Number of selections to show")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

func printHistory(w io.Writer, sels []*selection.Selection) {
	rule := min(termWidth(), 48)
	fmt.Fprintln(w, formatHeader(fmt.Sprintf("%-16s %-5s  %-5s  %s", "Date", "Time", "Via", "Session")))
	fmt.Fprintln(w, formatMuted(strings.Repeat("─", rule)))
	for _, s := range sels {
		fmt.Fprintf(w, "%-16s %s  %s  %s\n",
			s.At.Format("Mon Jan 2 2006"),
			formatTime(s.Clock().String()),
			formatSource(s.Source),
			formatMuted(shortID(s.SessionID)),
		)
	}
}

// shortID returns the first block of a session UUID.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
