package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/kanso-tracker/internal/app"
	"github.com/comitanigiacomo/kanso-tracker/internal/core/analytics"
	"github.com/comitanigiacomo/kanso-tracker/internal/core/domain"
)

func habitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "habits",
		Short: "List habits with today's state and current streak",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(a *app.App) error {
				ctx := cmd.Context()
				out := cmd.OutOrStdout()

				habits, err := a.HabitService.List(ctx)
				if err != nil {
					return fmt.Errorf("failed to list habits: %w", err)
				}
				if len(habits) == 0 {
					fmt.Fprintln(out, subtleStyle.Render("No habits yet."))
					return nil
				}

				today := a.StatsService.Today()
				w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					headerStyle.Render("ID"),
					headerStyle.Render("Habit"),
					headerStyle.Render("Today"),
					headerStyle.Render("Streak"))
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					strings.Repeat("─", 8), strings.Repeat("─", 20), strings.Repeat("─", 5), strings.Repeat("─", 6))

				for _, h := range habits {
					streak := analytics.HabitStreak(h, today)
					fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", shortID(h.ID), h.Name, todayMark(h, today), streak.Current)
				}
				return w.Flush()
			})
		},
	}
}

func doneCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "done <habit-id>",
		Short: "Mark a habit as done (today unless --date is given)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app.App) error {
				id, err := resolveHabitID(cmd, a, args[0])
				if err != nil {
					return err
				}

				h, err := a.HabitService.MarkDone(cmd.Context(), id, date)
				if err != nil {
					return err
				}

				day := date
				if day == "" {
					day = a.StatsService.Today()
				}
				// Future dates are ignored by the tracker.
				if !h.IsCompletedOn(day) {
					fmt.Fprintln(cmd.OutOrStdout(), subtleStyle.Render(fmt.Sprintf("%s is in the future, nothing recorded for %s", day, h.Name)))
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(fmt.Sprintf("✓ %s done on %s", h.Name, day)))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "completion date (YYYY-MM-DD)")
	return cmd
}

// resolveHabitID accepts a full id or the unique prefix printed by "habits".
func resolveHabitID(cmd *cobra.Command, a *app.App, ref string) (string, error) {
	habits, err := a.HabitService.List(cmd.Context())
	if err != nil {
		return "", err
	}

	var match string
	for _, h := range habits {
		if h.ID == ref {
			return h.ID, nil
		}
		if strings.HasPrefix(h.ID, ref) {
			if match != "" {
				return "", fmt.Errorf("habit id %q is ambiguous", ref)
			}
			match = h.ID
		}
	}
	if match == "" {
		return "", domain.ErrHabitNotFound
	}
	return match, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func todayMark(h *domain.Habit, today string) string {
	if h.IsCompletedOn(today) {
		return successStyle.Render("✓")
	}
	return subtleStyle.Render("·")
}
