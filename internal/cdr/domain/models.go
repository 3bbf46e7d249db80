// Package domain holds the decoded CDR views consumed by the rating pipeline.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// RawRecord maps schema field names to their trimmed string values.
type RawRecord map[string]string

// CallClass categorizes the dialed destination by its address nature.
type CallClass string

const (
	ClassLandline      CallClass = "landline"
	ClassMobile        CallClass = "mobile"
	ClassInternational CallClass = "international"
	ClassUnknown       CallClass = "unknown"
)

// ClassFromAddressNature maps the CALLEDADDRESSNATURE code to a call class.
func ClassFromAddressNature(code string) CallClass {
	switch code {
	case "3":
		return ClassInternational
	case "2":
		return ClassMobile
	case "0":
		return ClassLandline
	default:
		return ClassUnknown
	}
}

// CallRecord is the decoded, immutable view of one CDR line. It is created
// once per input line and discarded after charge computation.
type CallRecord struct {
	Raw         RawRecord
	AnswerAt    time.Time
	EndAt       time.Time
	Subscriber  string
	Destination string
	Class       CallClass

	// TimeFallback marks records whose date/time fields were unparsable
	// and were substituted with the current time.
	TimeFallback bool
}

// RatedRecord is the pipeline output for one call: the original identifying
// fields plus the derived class, resolved country code, tier durations and
// the final charge.
type RatedRecord struct {
	ID               snowflake.ID `json:"id"`
	NetType          string       `json:"NETTYPE"`
	BillType         string       `json:"BILLTYPE"`
	Subscriber       string       `json:"SUBSCRIBER"`
	Destination      string       `json:"DESTINATION"`
	CallClass        CallClass    `json:"CTYPE"`
	Economical       bool         `json:"ECONOMICAL"`
	CountryCode      *int         `json:"COUNTRYCODE"`
	AnsDate          string       `json:"ANSDATE"`
	AnsTime          string       `json:"ANSTIME"`
	EndDate          string       `json:"ENDDATE"`
	EndTime          string       `json:"ENDTIME"`
	ConversationTime string       `json:"CONVERSATIONTIME"`

	CalculatedConversationTime int64   `json:"CALCULATEDCONVERSATIONTIME"`
	StandardSeconds            int64   `json:"STANDARDSECONDS"`
	ReducedSeconds             int64   `json:"REDUCEDSECONDS"`
	TotalCharges               float64 `json:"TOTALCHARGES"`
}
