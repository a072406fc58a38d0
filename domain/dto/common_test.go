package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateAcceptsBothFormats(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-09-15"`), &d))
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, time.September, d.Month())
	assert.Equal(t, 15, d.Day())

	var full Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-09-15T18:30:00Z"`), &full))
	assert.Equal(t, 18, full.Hour())
}

func TestDateRejectsGarbage(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"next tuesday"`), &d))
}

func TestDateMarshalsRFC3339(t *testing.T) {
	d := Date{Time: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)}
	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-09-15T00:00:00Z"`, string(out))
}
