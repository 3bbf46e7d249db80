package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	cdrdomain "github.com/hexatel/callrater/internal/cdr/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []cdrdomain.RatedRecord {
	code := 6088
	return []cdrdomain.RatedRecord{
		{
			NetType:                    "11",
			BillType:                   "01",
			Subscriber:                 "0123456789",
			Destination:                "0060881234567",
			CallClass:                  cdrdomain.ClassInternational,
			CountryCode:                &code,
			AnsDate:                    "13082024",
			AnsTime:                    "092305",
			EndDate:                    "13082024",
			EndTime:                    "092330",
			ConversationTime:           "25",
			CalculatedConversationTime: 25,
			StandardSeconds:            25,
			TotalCharges:               0.06,
		},
		{
			NetType:                    "11",
			BillType:                   "01",
			Subscriber:                 "0123456789",
			Destination:                "0079261234567",
			CallClass:                  cdrdomain.ClassInternational,
			AnsDate:                    "13082024",
			AnsTime:                    "100000",
			EndDate:                    "13082024",
			EndTime:                    "100100",
			ConversationTime:           "60",
			CalculatedConversationTime: 60,
			StandardSeconds:            60,
			TotalCharges:               0.1,
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleRecords()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, "0060881234567", rows[1][3])
	assert.Equal(t, "6088", rows[1][6])
	assert.Equal(t, "0.06", rows[1][13])
	// Unresolved destination: empty country cell, charges padded to 2dp.
	assert.Equal(t, "", rows[2][6])
	assert.Equal(t, "0.10", rows[2][13])
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleRecords()))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)

	assert.Equal(t, "international", decoded[0]["CTYPE"])
	assert.Equal(t, float64(6088), decoded[0]["COUNTRYCODE"])
	assert.Equal(t, 0.06, decoded[0]["TOTALCHARGES"])
	assert.Nil(t, decoded[1]["COUNTRYCODE"])
}
