package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpsertLeavesCurationColumns(t *testing.T) {
	assert.Equal(t, []string{"instagram_id"}, conflictCols)
	assert.ElementsMatch(t, []string{"image_url", "caption", "permalink", "timestamp"}, refreshCols)
	for _, curated := range []string{"is_visible", "venue_tag", "display_order"} {
		assert.NotContains(t, refreshCols, curated)
	}
}
