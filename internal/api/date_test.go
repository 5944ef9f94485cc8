package api_test

import (
	"encoding/json"
	"testing"
	"time"

	"wallet_ledger/internal/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	var d api.Date
	require.NoError(t, json.Unmarshal([]byte(`"29-02-2024"`), &d))
	assert.True(t, d.Equal(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)))

	out, err := json.Marshal(api.Date{Time: time.Date(2024, 5, 1, 18, 30, 0, 0, time.UTC)})
	require.NoError(t, err)
	assert.Equal(t, `"01-05-2024"`, string(out))

	for _, bad := range []string{`"2024-05-01"`, `"31-02-2024"`, `"1-5-24"`, `20240501`} {
		assert.ErrorIs(t, json.Unmarshal([]byte(bad), &d), api.ErrDateFormat, bad)
	}
}
