package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"endocare/internal/client"
	"endocare/internal/config"
	"endocare/internal/logging"
	"endocare/internal/store"
)

var (
	baseURL string

	journalStore *store.Store
	remote       *client.Client
	zlog         *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "endocare",
	Short: "Track endometriosis symptoms, meals, periods and sleep",
	Long: `endocare is a personal health journal for endometriosis.

Entries are kept locally and synced to the backend on a best-effort
basis: logging works offline, and the server catches up on the next
full sync.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		cfg, err := config.LoadClient()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if baseURL != "" {
			cfg.BaseURL = baseURL
		}
		zlog, err = logging.New(cfg.LogMode)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		remote = client.New(client.Config{
			BaseURL:            cfg.BaseURL,
			RequestTimeout:     cfg.RequestTimeout,
			HealthCheckTimeout: cfg.HealthCheckTimeout,
			MaxRetries:         cfg.MaxRetries,
			Logger:             zlog,
		})
		journalStore = store.New(store.Config{
			API:      remote,
			Notifier: terminalNotifier{},
			Logger:   zlog,
		})
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if journalStore != nil {
			journalStore.Close()
		}
		if zlog != nil {
			zlog.Sync()
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseURL, "server", "", "backend base URL (overrides ENDOCARE_BASE_URL)")
}
