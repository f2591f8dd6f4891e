package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/timewheel/internal/picker"
	"github.com/javiermolinar/timewheel/internal/timeofday"
)

func (a *App) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check HH:MM",
		Short: "Validate a typed time without the picker",
		Long: `Run a typed time through the range check of the picker's text mode.
Typed minutes need not fall on the interval. A valid time is printed as
RFC3339 on the reference date; an invalid one prints nothing on stdout and
exits non-zero.

Example:
  timewheel check 13:03 --min 12:00 --max 15:00 --interval 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.effectiveConfig(cmd)
			if err != nil {
				return err
			}
			opts, _, err := a.pickerOptions(cfg)
			if err != nil {
				return err
			}

			session := picker.Open(opts, a.now())
			_, sel := session.SubmitText(args[0])
			if sel == nil {
				return checkError(args[0], opts.Bounds)
			}
			fmt.Fprintln(cmd.OutOrStdout(), sel.At.Format(time.RFC3339))
			return nil
		},
	}
}

// checkError explains why input was rejected.
func checkError(input string, b picker.Bounds) error {
	if _, err := timeofday.Parse(input); err != nil {
		return err
	}
	return fmt.Errorf("%w: %s is not between %s and %s",
		picker.ErrInvalidCandidate, strings.TrimSpace(input), b.EffectiveMin(), b.EffectiveMax())
}

func (a *App) hoursCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hours",
		Short: "Print the hours the picker offers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.effectiveConfig(cmd)
			if err != nil {
				return err
			}
			bounds, _, err := cfg.Bounds()
			if err != nil {
				return err
			}
			printDataset(cmd.OutOrStdout(), picker.HourDataset(bounds))
			return nil
		},
	}
}

func (a *App) minutesCmd() *cobra.Command {
	var hour int

	cmd := &cobra.Command{
		Use:   "minutes",
		Short: "Print the minutes the picker offers for an hour",
		Long: `Print the minute wheel for the given hour. The list is empty when no
minute of that hour is inside the configured range.

Example:
  timewheel minutes --hour 12 --min 12:00 --max 15:00 --interval 3`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if hour < 0 || hour > 23 {
				return fmt.Errorf("hour must be between 0 and 23, got %d", hour)
			}
			cfg, err := a.effectiveConfig(cmd)
			if err != nil {
				return err
			}
			bounds, _, err := cfg.Bounds()
			if err != nil {
				return err
			}
			printDataset(cmd.OutOrStdout(), picker.MinuteDataset(hour, cfg.Picker.MinuteInterval, bounds))
			return nil
		},
	}

	cmd.Flags().IntVar(&hour, "hour", 0, "Hour to list minutes for (0-23)")
	_ = cmd.MarkFlagRequired("hour")
	return cmd
}

// printDataset writes zero-padded values on one line, wrapped to the terminal.
func printDataset(w io.Writer, values []int) {
	width := termWidth()
	line := 0
	for i, v := range values {
		label := fmt.Sprintf("%02d", v)
		if i > 0 {
			if line+1+len(label) > width {
				fmt.Fprintln(w)
				line = 0
			} else {
				fmt.Fprint(w, " ")
				line++
			}
		}
		fmt.Fprint(w, label)
		line += len(label)
	}
	fmt.Fprintln(w)
}
