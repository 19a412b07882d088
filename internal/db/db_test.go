package db

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The appointment timestamps are stored as timestamptz, so the exclusion
// constraint has to build a tstzrange; tsrange(timestamptz, timestamptz)
// does not resolve and the constraint would silently never exist.
func TestSlotExclusionDDL(t *testing.T) {
	assert.Contains(t, slotExclusionDDL, "tstzrange(start_time, end_time)")
	assert.False(t, strings.Contains(slotExclusionDDL, "tsrange("),
		"range expression must use tstzrange for timestamptz columns")

	assert.Contains(t, slotExclusionDDL, "barber_id WITH =")
	assert.Contains(t, slotExclusionDDL, "WHERE (status <> 'CANCELLED')")
	assert.Contains(t, btreeGistDDL, "btree_gist")
}
