// file: websocket/messenger_test.go
package websocket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academy-admin/models"
)

func TestEncodeCounts(t *testing.T) {
	b, err := encodeCounts(models.DashboardCounts{Trials: 4, Contacts: 2})
	require.NoError(t, err)
	assert.JSONEq(t, `{"action":"counts","trials":4,"contacts":2}`, string(b))
}
