package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"endocare/internal/journal"
)

var logCmd = &cobra.Command{
	Use:   "log [sleep|food|period|symptom]",
	Short: "Record a journal entry",
	Long: `Record a journal entry. The entry is committed locally right away
and pushed to the backend in the background; an unreachable server
never blocks logging.`,
}

var (
	logDate string

	sleepHours       float64
	sleepQuality     int
	sleepDisruptions string
	sleepNotes       string

	foodMeal  string
	foodItems string
	foodFlare int
	foodNotes string

	periodType  string
	periodFlow  string
	periodNotes string

	symptomNausea  int
	symptomFatigue int
	symptomPain    int
	symptomNotes   string
)

var logSleepCmd = &cobra.Command{
	Use:   "sleep",
	Short: "Record last night's sleep",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkScale("quality", sleepQuality); err != nil {
			return err
		}
		entry := journalStore.AddSleepLog(journal.SleepLog{
			Date:             entryDate(),
			HoursSlept:       sleepHours,
			SleepQuality:     sleepQuality,
			SleepDisruptions: sleepDisruptions,
			Notes:            sleepNotes,
		})
		fmt.Printf("%s sleep entry %s (%.1fh, quality %d)\n",
			okStyle.Render("Logged"), entry.ID, entry.HoursSlept, entry.SleepQuality)
		return nil
	},
}

var logFoodCmd = &cobra.Command{
	Use:   "food",
	Short: "Record a meal",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !validMeal(foodMeal) {
			return fmt.Errorf("meal must be one of breakfast, lunch, dinner, snack")
		}
		if err := checkScale("flare", foodFlare); err != nil {
			return err
		}
		entry := journalStore.AddFoodLog(journal.FoodLog{
			Date:         entryDate(),
			MealType:     foodMeal,
			FoodItems:    foodItems,
			FlareUpScore: foodFlare,
			Notes:        foodNotes,
		})
		fmt.Printf("%s %s entry %s (%s)\n",
			okStyle.Render("Logged"), entry.MealType, entry.ID, entry.FoodItems)
		return nil
	},
}

var logPeriodCmd = &cobra.Command{
	Use:   "period",
	Short: "Record a period start or end",
	RunE: func(cmd *cobra.Command, args []string) error {
		if periodType != journal.PeriodStart && periodType != journal.PeriodEnd {
			return fmt.Errorf("type must be start or end")
		}
		flow, err := parseFlowLevel(periodFlow)
		if err != nil {
			return err
		}
		entry := journalStore.AddPeriodLog(journal.PeriodLog{
			Date:      entryDate(),
			Type:      periodType,
			FlowLevel: flow,
			Notes:     periodNotes,
		})
		fmt.Printf("%s period %s entry %s\n",
			okStyle.Render("Logged"), entry.Type, entry.ID)
		return nil
	},
}

var logSymptomCmd = &cobra.Command{
	Use:   "symptom",
	Short: "Record a symptom check-in",
	RunE: func(cmd *cobra.Command, args []string) error {
		for name, value := range map[string]int{
			"nausea": symptomNausea, "fatigue": symptomFatigue, "pain": symptomPain,
		} {
			if err := checkScale(name, value); err != nil {
				return err
			}
		}
		entry := journalStore.AddSymptomLog(journal.SymptomEntry{
			Date:    entryDate(),
			Nausea:  symptomNausea,
			Fatigue: symptomFatigue,
			Pain:    symptomPain,
			Notes:   symptomNotes,
		})
		fmt.Printf("%s symptom entry %s (nausea %d, fatigue %d, pain %d)\n",
			okStyle.Render("Logged"), entry.ID, entry.Nausea, entry.Fatigue, entry.Pain)
		return nil
	},
}

func entryDate() string {
	if logDate != "" {
		return logDate
	}
	return time.Now().Format("2006-01-02")
}

func checkScale(name string, value int) error {
	if value < 1 || value > 10 {
		return fmt.Errorf("%s must be between 1 and 10", name)
	}
	return nil
}

func validMeal(meal string) bool {
	switch meal {
	case journal.MealBreakfast, journal.MealLunch, journal.MealDinner, journal.MealSnack:
		return true
	}
	return false
}

func parseFlowLevel(flow string) (int, error) {
	switch flow {
	case "light":
		return journal.FlowLevelLight, nil
	case "moderate":
		return journal.FlowLevelModerate, nil
	case "heavy":
		return journal.FlowLevelHeavy, nil
	case "":
		return 0, nil
	}
	return 0, fmt.Errorf("flow must be light, moderate or heavy")
}

func init() {
	logCmd.PersistentFlags().StringVar(&logDate, "date", "", "entry date as YYYY-MM-DD (default today)")

	logSleepCmd.Flags().Float64Var(&sleepHours, "hours", 0, "hours slept")
	logSleepCmd.Flags().IntVar(&sleepQuality, "quality", 5, "sleep quality, 1-10")
	logSleepCmd.Flags().StringVar(&sleepDisruptions, "disruptions", "", "what disrupted sleep, e.g. pain")
	logSleepCmd.Flags().StringVar(&sleepNotes, "notes", "", "free-form notes")
	logSleepCmd.MarkFlagRequired("hours")

	logFoodCmd.Flags().StringVar(&foodMeal, "meal", "", "breakfast, lunch, dinner or snack")
	logFoodCmd.Flags().StringVar(&foodItems, "items", "", "comma-separated food items")
	logFoodCmd.Flags().IntVar(&foodFlare, "flare", 1, "flare-up score, 1-10")
	logFoodCmd.Flags().StringVar(&foodNotes, "notes", "", "free-form notes")
	logFoodCmd.MarkFlagRequired("meal")
	logFoodCmd.MarkFlagRequired("items")

	logPeriodCmd.Flags().StringVar(&periodType, "type", "", "start or end")
	logPeriodCmd.Flags().StringVar(&periodFlow, "flow", "", "light, moderate or heavy")
	logPeriodCmd.Flags().StringVar(&periodNotes, "notes", "", "free-form notes")
	logPeriodCmd.MarkFlagRequired("type")

	logSymptomCmd.Flags().IntVar(&symptomNausea, "nausea", 1, "nausea, 1-10")
	logSymptomCmd.Flags().IntVar(&symptomFatigue, "fatigue", 1, "fatigue, 1-10")
	logSymptomCmd.Flags().IntVar(&symptomPain, "pain", 1, "pain, 1-10")
	logSymptomCmd.Flags().StringVar(&symptomNotes, "notes", "", "free-form notes")

	logCmd.AddCommand(logSleepCmd, logFoodCmd, logPeriodCmd, logSymptomCmd)
	rootCmd.AddCommand(logCmd)
}
