package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"endocare/internal/triggers"
)

var triggersCmd = &cobra.Command{
	Use:   "triggers",
	Short: "Show the trigger severity heatmap",
	Long: `Fetch the trigger analysis and render a per-day severity strip:
every dated trigger detail is summed per day and bucketed into
low, medium and high bands.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		summary, err := remote.FetchTriggerSummary(context.Background())
		if err != nil {
			return err
		}
		series := triggers.Aggregate(summary)

		fmt.Println(titleStyle.Render("Trigger severity"))
		if len(series) == 0 {
			fmt.Println(subtitleStyle.Render("  no trigger data yet"))
			return nil
		}
		for _, day := range series {
			level := triggers.LevelOf(day.Severity)
			bar := severityBar(day.Severity, level)
			fmt.Printf("  %s  %s %.1f (%s)\n", day.Date, bar, day.Severity, level)
		}
		if triggersShowDetails {
			fmt.Println()
			fmt.Println(titleStyle.Render("Details"))
			for _, entry := range triggers.Entries(summary) {
				fmt.Printf("  %s  %-12s severity %.1f\n", entry.Date, entry.Label, entry.Severity)
			}
		}
		fmt.Printf("\n  symptom average %.2f, spike threshold %.2f (stddev %.2f)\n",
			summary.SymptomAverage, summary.SymptomSpikeThreshold, summary.StandardDeviation)
		return nil
	},
}

var triggersShowDetails bool

func severityBar(severity float64, level triggers.SeverityLevel) string {
	width := int(severity)
	if width < 1 {
		width = 1
	}
	if width > 20 {
		width = 20
	}
	return severityStyle(level).Render(strings.Repeat("█", width))
}

func severityStyle(level triggers.SeverityLevel) lipgloss.Style {
	switch level {
	case triggers.LevelLow:
		return severityLow
	case triggers.LevelMedium:
		return severityMed
	case triggers.LevelHigh:
		return severityHigh
	default:
		return severityNone
	}
}

func init() {
	triggersCmd.Flags().BoolVar(&triggersShowDetails, "details", false,
		"list every trigger detail behind the daily totals")
	rootCmd.AddCommand(triggersCmd)
}
