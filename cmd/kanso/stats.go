package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/kanso-tracker/internal/app"
	"github.com/comitanigiacomo/kanso-tracker/internal/core/domain"
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print today's progress, streaks and the weekly trend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(a *app.App) error {
				o, err := a.StatsService.Overview(cmd.Context())
				if err != nil {
					return fmt.Errorf("failed to compute stats: %w", err)
				}
				renderOverview(cmd.OutOrStdout(), o)
				return nil
			})
		},
	}
}

func renderOverview(w io.Writer, o *domain.Overview) {
	lines := []string{
		fmt.Sprintf("Today          %d/%d habits", o.CompletedToday, o.TotalHabits),
		fmt.Sprintf("Perfect days   %d in a row", o.PerfectStreak),
		fmt.Sprintf("Best streak    %d days", o.BestStreak),
		fmt.Sprintf("This week      %d%% %s (last week %d%%)", o.Week.Current, trendArrow(o.Week.Trend), o.Week.Previous),
	}

	fmt.Fprintln(w, titleStyle.Render("Kanso · "+o.Today))
	fmt.Fprintln(w, boxStyle.Render(strings.Join(lines, "\n")))
}

func trendArrow(t domain.Trend) string {
	switch t {
	case domain.TrendUp:
		return successStyle.Render("▲")
	case domain.TrendDown:
		return errorStyle.Render("▼")
	default:
		return subtleStyle.Render("=")
	}
}

func heatmapCmd() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Draw the yearly completion heatmap",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(a *app.App) error {
				if year == 0 {
					year = a.Clock.Now().Year()
				}
				days, err := a.StatsService.YearHeatmap(cmd.Context(), year)
				if err != nil {
					return fmt.Errorf("failed to build heatmap: %w", err)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Kanso · %d", year)))
				fmt.Fprintln(out, renderHeatmap(days))
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "calendar year (default: current)")
	return cmd
}

// renderHeatmap lays days out in weekday rows and week columns, Sunday first.
func renderHeatmap(days []domain.CalendarDay) string {
	if len(days) == 0 {
		return subtleStyle.Render("No days to show.")
	}

	first, err := domain.ParseDate(days[0].Date)
	if err != nil {
		return ""
	}
	offset := int(first.Weekday())
	weeks := (offset + len(days) + 6) / 7

	grid := make([][]string, 7)
	for r := range grid {
		grid[r] = make([]string, weeks)
		for c := range grid[r] {
			grid[r][c] = " "
		}
	}
	for i, d := range days {
		pos := offset + i
		level := max(0, min(d.Intensity, len(intensityStyles)-1))
		grid[pos%7][pos/7] = intensityStyles[level].Render("■")
	}

	labels := []string{"Sun", "", "Tue", "", "Thu", "", "Sat"}
	rows := make([]string, 7)
	for r := range grid {
		rows[r] = subtleStyle.Width(4).Render(labels[r]) + strings.Join(grid[r], "")
	}

	legend := subtleStyle.Render("less ")
	for _, s := range intensityStyles {
		legend += s.Render("■")
	}
	legend += subtleStyle.Render(" more")

	return lipgloss.JoinVertical(lipgloss.Left, strings.Join(rows, "\n"), "", legend)
}

