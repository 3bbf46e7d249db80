// Package resolver maps dialed numbers to rate-table country codes.
package resolver

import (
	"strings"

	ratesdomain "github.com/hexatel/callrater/internal/rates/domain"
	"go.uber.org/zap"
)

// Outbound prefixes recognized on dialed numbers. Anything else is a
// domestic call rated without a country lookup.
const InternationalPrefix = "00"

// Operator access prefixes select the discounted (economic) tariff.
var OperatorPrefixes = []string{"095", "097", "098", "099"}

// Dial plans are at most four digits; the search runs longest-first.
const maxDialPlanLen = 4

// Classifier derives a country calling code from a number's international
// form. It backstops destinations the rate table cannot match.
type Classifier interface {
	Classify(number string) (int, bool)
}

// Outcome reports one resolution. Resolved false means the destination
// rates at the default rate. The diagnostic flags feed pipeline counters.
type Outcome struct {
	CountryCode  int
	Resolved     bool
	UsedFallback bool
	SawAmbiguity bool
}

type Resolver struct {
	table      *ratesdomain.Table
	classifier Classifier
	log        *zap.Logger
}

func New(table *ratesdomain.Table, classifier Classifier, log *zap.Logger) *Resolver {
	return &Resolver{
		table:      table,
		classifier: classifier,
		log:        log.Named("rates.resolver"),
	}
}

// Resolve finds the country code for a dialed number.
//
// The number must carry a recognized outbound prefix; after stripping it,
// dial plans are tried from four digits down to one. The first length with
// a match wins when the matches agree on a country code. Same-length
// matches that disagree are skipped, not errored: the search continues at
// shorter lengths and finally falls through to the classifier.
func (r *Resolver) Resolve(number string) Outcome {
	rest, ok := stripOutboundPrefix(number)
	if !ok {
		return Outcome{}
	}

	sawAmbiguity := false
	for length := maxDialPlanLen; length >= 1; length-- {
		if len(rest) < length {
			continue
		}
		matches := r.table.ByDialPlan(rest[:length])
		if len(matches) == 0 {
			continue
		}
		if code, agreed := agreedCountryCode(matches); agreed {
			return Outcome{CountryCode: code, Resolved: true, SawAmbiguity: sawAmbiguity}
		}
		sawAmbiguity = true
		r.log.Debug("skipping ambiguous dial-plan match",
			zap.String("prefix", rest[:length]),
			zap.Int("matches", len(matches)),
		)
	}

	if r.classifier != nil {
		if code, classified := r.classifier.Classify(rest); classified {
			return Outcome{
				CountryCode:  code,
				Resolved:     true,
				UsedFallback: true,
				SawAmbiguity: sawAmbiguity,
			}
		}
	}
	return Outcome{SawAmbiguity: sawAmbiguity}
}

// EconomicAccess reports whether a dialed number selects the discounted
// tariff: operator access prefixes do, the plain international prefix
// never does.
func EconomicAccess(number string) bool {
	for _, p := range OperatorPrefixes {
		if strings.HasPrefix(number, p) {
			return true
		}
	}
	return false
}

func stripOutboundPrefix(number string) (string, bool) {
	for _, p := range OperatorPrefixes {
		if strings.HasPrefix(number, p) {
			return number[len(p):], true
		}
	}
	if strings.HasPrefix(number, InternationalPrefix) {
		return number[len(InternationalPrefix):], true
	}
	return "", false
}

func agreedCountryCode(matches []ratesdomain.RateEntry) (int, bool) {
	code := matches[0].CountryCode
	for _, m := range matches[1:] {
		if m.CountryCode != code {
			return 0, false
		}
	}
	return code, true
}
