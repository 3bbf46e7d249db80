// Package export renders rated records as CSV or JSON.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	cdrdomain "github.com/hexatel/callrater/internal/cdr/domain"
)

// csvHeader is the column order of the CSV export. It matches the
// downstream billing import and must not be reordered.
var csvHeader = []string{
	"NETTYPE",
	"BILLTYPE",
	"SUBSCRIBER",
	"DESTINATION",
	"CTYPE",
	"ECONOMICAL",
	"COUNTRYCODE",
	"ANSDATE",
	"ANSTIME",
	"ENDDATE",
	"ENDTIME",
	"CONVERSATIONTIME",
	"CALCULATEDCONVERSATIONTIME",
	"TOTALCHARGES",
}

// WriteCSV writes a header row followed by one row per record. An
// unresolved country code renders as an empty cell.
func WriteCSV(w io.Writer, records []cdrdomain.RatedRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, rec := range records {
		countryCode := ""
		if rec.CountryCode != nil {
			countryCode = strconv.Itoa(*rec.CountryCode)
		}
		row := []string{
			rec.NetType,
			rec.BillType,
			rec.Subscriber,
			rec.Destination,
			string(rec.CallClass),
			strconv.FormatBool(rec.Economical),
			countryCode,
			rec.AnsDate,
			rec.AnsTime,
			rec.EndDate,
			rec.EndTime,
			rec.ConversationTime,
			strconv.FormatInt(rec.CalculatedConversationTime, 10),
			strconv.FormatFloat(rec.TotalCharges, 'f', 2, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the records as an indented JSON array.
func WriteJSON(w io.Writer, records []cdrdomain.RatedRecord) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
