package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var recommendationsCmd = &cobra.Command{
	Use:   "recommendations",
	Short: "Show lifestyle recommendations from the trigger analysis",
	RunE: func(cmd *cobra.Command, args []string) error {
		lines, err := remote.FetchRecommendations(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(titleStyle.Render("Recommendations"))
		if len(lines) == 0 {
			fmt.Println(subtitleStyle.Render("  nothing yet, keep logging"))
			return nil
		}
		for _, line := range lines {
			fmt.Println("  • " + line)
		}
		return nil
	},
}

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Show the flare-up outlook",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		prediction, err := remote.FetchFlareupPrediction(ctx)
		if err != nil {
			return err
		}
		average, err := remote.FetchSevenDayAverage(ctx)
		if err != nil {
			return err
		}

		fmt.Println(titleStyle.Render("Flare-up outlook"))
		fmt.Printf("  probability: %.0f%%\n", prediction.FlareupProbability)
		for _, line := range prediction.FlareupPredictions {
			fmt.Println("  • " + line)
		}
		fmt.Println(titleStyle.Render("Last 7 days"))
		fmt.Printf("  nausea %.1f  fatigue %.1f  pain %.1f\n",
			average.AverageNausea, average.AverageFatigue, average.AveragePain)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(recommendationsCmd, predictCmd)
}
