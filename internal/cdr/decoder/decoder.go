// Package decoder turns pipe-delimited switch CDR lines into structured
// records.
package decoder

import (
	"strings"
	"time"

	cdrdomain "github.com/hexatel/callrater/internal/cdr/domain"
	"github.com/hexatel/callrater/internal/clock"
	"go.uber.org/zap"
)

// Timestamp layout of the ANSDATE/ANSTIME field pair (DDMMYYYY + HHMMSS).
const timestampLayout = "02012006150405"

type Decoder struct {
	clk clock.Clock
	log *zap.Logger
}

func New(clk clock.Clock, log *zap.Logger) *Decoder {
	return &Decoder{
		clk: clk,
		log: log.Named("cdr.decoder"),
	}
}

// Decode splits one line on '|' and assigns tokens to schema fields in
// order. Tokens are trimmed; a missing token yields an empty value. There
// is no failure mode: malformed numerics are deferred to downstream
// parsing.
func (d *Decoder) Decode(line string) cdrdomain.RawRecord {
	tokens := strings.Split(line, "|")
	record := make(cdrdomain.RawRecord, len(cdrdomain.Schema))
	for i, field := range cdrdomain.Schema {
		if i < len(tokens) {
			record[field.Name] = strings.TrimSpace(tokens[i])
		} else {
			record[field.Name] = ""
		}
	}
	return record
}

// CallRecord derives the rating view from a raw record: answer/end
// timestamps, subscriber and destination numbers, and the call class.
// Unparsable timestamps are substituted with the current time rather than
// failing the record.
func (d *Decoder) CallRecord(raw cdrdomain.RawRecord) cdrdomain.CallRecord {
	answerAt, ansOK := parseTimestamp(raw[cdrdomain.FieldAnsDate], raw[cdrdomain.FieldAnsTime])
	endAt, endOK := parseTimestamp(raw[cdrdomain.FieldEndDate], raw[cdrdomain.FieldEndTime])

	fallback := !ansOK || !endOK
	if fallback {
		now := d.clk.Now()
		if !ansOK {
			answerAt = now
		}
		if !endOK {
			endAt = now
		}
		d.log.Warn("substituted unparsable call timestamps",
			zap.String("ansdate", raw[cdrdomain.FieldAnsDate]),
			zap.String("anstime", raw[cdrdomain.FieldAnsTime]),
			zap.String("enddate", raw[cdrdomain.FieldEndDate]),
			zap.String("endtime", raw[cdrdomain.FieldEndTime]),
		)
	}

	return cdrdomain.CallRecord{
		Raw:          raw,
		AnswerAt:     answerAt,
		EndAt:        endAt,
		Subscriber:   raw[cdrdomain.FieldCallerNumber],
		Destination:  raw[cdrdomain.FieldCalledNumber],
		Class:        cdrdomain.ClassFromAddressNature(raw[cdrdomain.FieldCalledAddressNature]),
		TimeFallback: fallback,
	}
}

func parseTimestamp(date, clock string) (time.Time, bool) {
	if len(date) != 8 || len(clock) != 6 {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(timestampLayout, date+clock, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
