package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/akbaralfaidah/sentimen-splitbill/internal/dataset"
	"github.com/akbaralfaidah/sentimen-splitbill/internal/notify"
)

// Swapped out in tests.
var (
	notifyInfo  = notify.Info
	notifyAlert = notify.Alert
)

// importCmd rebuilds the sqlite cache from the CSV.
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Rebuild the dataset cache from the CSV",
	Long: `Reads the CSV named by --file or dataset.path and stores it in the sqlite
cache at dataset.cache_path. Later runs read the cache until the CSV changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		o := datasetOptions()
		if o.CachePath == "" {
			return fmt.Errorf("dataset.cache_path is empty")
		}
		n, err := dataset.Import(o)
		if err != nil {
			if cfg.Notifications.Enabled {
				title, msg := notify.FormatImportFailed(o.Path, err)
				sendNotification(notifyAlert, title, msg)
			}
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d records from %s into %s\n", n, o.Path, o.CachePath)
		if cfg.Notifications.Enabled {
			title, msg := notify.FormatImportDone(n, o.Path)
			sendNotification(notifyInfo, title, msg)
		}
		return nil
	},
}

func sendNotification(send func(title, message string) error, title, message string) {
	if err := send(title, message); err != nil {
		logger.Debug("notification failed", zap.Error(err))
	}
}
