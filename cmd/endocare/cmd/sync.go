package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Pull the latest data from the backend",
	Long: `Run a full sync: health check, then fetch all four collections and
replace the local state with the server's view.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := journalStore.Sync(context.Background()); err != nil {
			return err
		}
		state := journalStore.Snapshot()
		fmt.Printf("%s %d sleep, %d food, %d period, %d symptom entries (status: %s)\n",
			okStyle.Render("Synced"),
			len(state.SleepLogs), len(state.FoodLogs),
			len(state.PeriodLogs), len(state.SymptomLogs),
			state.ConnectionStatus)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
