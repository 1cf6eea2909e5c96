package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

// Info shows a plain desktop notification.
func Info(title, message string) error {
	return beeep.Notify(title, message, "")
}

// Alert shows a notification with the system alert sound.
func Alert(title, message string) error {
	return beeep.Alert(title, message, "")
}

// FormatImportDone builds the notification shown after the cache is rebuilt.
func FormatImportDone(rows int, source string) (string, string) {
	title := "Dataset imported"
	msg := fmt.Sprintf("%d records from %s are ready to browse.", rows, source)
	return title, msg
}

// FormatImportFailed builds the alert shown when an import gives up.
func FormatImportFailed(source string, err error) (string, string) {
	return "Dataset import failed", fmt.Sprintf("%s: %v", source, err)
}
