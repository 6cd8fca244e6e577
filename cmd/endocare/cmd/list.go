package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"endocare/internal/store"
)

var listCmd = &cobra.Command{
	Use:   "list [sleep|food|period|symptoms]",
	Short: "Show journal entries",
	Long: `Fetch the latest data from the backend and print one collection, or
all of them when no kind is given. Falls back to nothing rather than
stale guesses when the server is unreachable.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"sleep", "food", "period", "symptoms"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := journalStore.Load(context.Background()); err != nil {
			return err
		}
		state := journalStore.Snapshot()
		kind := ""
		if len(args) == 1 {
			kind = args[0]
		}
		if kind == "" || kind == "sleep" {
			printSleep(state)
		}
		if kind == "" || kind == "food" {
			printFood(state)
		}
		if kind == "" || kind == "period" {
			printPeriod(state)
		}
		if kind == "" || kind == "symptoms" {
			printSymptoms(state)
		}
		return nil
	},
}

func printSleep(state store.State) {
	fmt.Println(titleStyle.Render("Sleep"))
	if len(state.SleepLogs) == 0 {
		fmt.Println(subtitleStyle.Render("  no entries"))
		return
	}
	for _, entry := range state.SleepLogs {
		line := fmt.Sprintf("  %s  %.1fh  quality %d", entry.Date, entry.HoursSlept, entry.SleepQuality)
		if entry.SleepDisruptions != "" && entry.SleepDisruptions != "None" {
			line += "  disrupted by " + entry.SleepDisruptions
		}
		fmt.Println(line)
	}
}

func printFood(state store.State) {
	fmt.Println(titleStyle.Render("Food"))
	if len(state.FoodLogs) == 0 {
		fmt.Println(subtitleStyle.Render("  no entries"))
		return
	}
	for _, entry := range state.FoodLogs {
		fmt.Printf("  %s  %-9s  %s\n", entry.Date, entry.MealType, entry.FoodItems)
	}
}

func printPeriod(state store.State) {
	fmt.Println(titleStyle.Render("Period"))
	if len(state.PeriodLogs) == 0 {
		fmt.Println(subtitleStyle.Render("  no entries"))
		return
	}
	for _, entry := range state.PeriodLogs {
		fmt.Printf("  %s  %-5s  flow level %d\n", entry.Date, entry.Type, entry.FlowLevel)
	}
}

func printSymptoms(state store.State) {
	fmt.Println(titleStyle.Render("Symptoms"))
	if len(state.SymptomLogs) == 0 {
		fmt.Println(subtitleStyle.Render("  no entries"))
		return
	}
	for _, entry := range state.SymptomLogs {
		fmt.Printf("  %s  nausea %2d  fatigue %2d  pain %2d\n",
			entry.Date, entry.Nausea, entry.Fatigue, entry.Pain)
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
