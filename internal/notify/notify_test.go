package notify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatImportDone(t *testing.T) {
	title, msg := FormatImportDone(1200, "tweets.csv")
	assert.Equal(t, "Dataset imported", title)
	assert.Equal(t, "1200 records from tweets.csv are ready to browse.", msg)
}

func TestFormatImportFailed(t *testing.T) {
	title, msg := FormatImportFailed("tweets.csv", errors.New("line 4: missing score"))
	assert.Equal(t, "Dataset import failed", title)
	assert.Equal(t, "tweets.csv: line 4: missing score", msg)
}
