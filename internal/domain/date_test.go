package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billforge/internal/domain"
)

func TestDate_MarshalJSON(t *testing.T) {
	d := domain.NewDate(2025, time.March, 14)
	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-03-14"`, string(raw))
}

func TestDate_UnmarshalJSON_DateOnly(t *testing.T) {
	var d domain.Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-03-14"`), &d))
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 14, d.Day())
}

func TestDate_UnmarshalJSON_RFC3339(t *testing.T) {
	var d domain.Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-03-14T18:45:00+05:30"`), &d))
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 14, d.Day())
}

func TestDate_UnmarshalJSON_Invalid(t *testing.T) {
	var d domain.Date
	assert.Error(t, json.Unmarshal([]byte(`"14/03/2025"`), &d))
}

func TestLineItems_JSONBRoundTrip(t *testing.T) {
	items := domain.LineItems{
		{Description: "Widget", Quantity: 2, Rate: 250, Total: 590},
		{Description: "Bolt", Quantity: 100, Rate: 5, Total: 590},
	}

	value, err := items.Value()
	require.NoError(t, err)

	var scanned domain.LineItems
	require.NoError(t, scanned.Scan(value))
	require.Len(t, scanned, 2)
	// Positional order must survive storage.
	assert.Equal(t, "Widget", scanned[0].Description)
	assert.Equal(t, "Bolt", scanned[1].Description)
}

func TestPartyAddress_ScanString(t *testing.T) {
	var p domain.PartyAddress
	require.NoError(t, p.Scan(`{"name":"Acme","address":"12 MG Road","state_code":"29","gstin":"29ABCDE1234F1Z5"}`))
	assert.Equal(t, "Acme", p.Name)
	assert.Equal(t, "29", p.StateCode)
}
