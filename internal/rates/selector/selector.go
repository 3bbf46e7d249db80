// Package selector picks the applicable rate entry for a resolved call.
package selector

import (
	cdrdomain "github.com/hexatel/callrater/internal/cdr/domain"
	"github.com/hexatel/callrater/internal/config"
	ratesdomain "github.com/hexatel/callrater/internal/rates/domain"
)

type Selector struct {
	table   *ratesdomain.Table
	tariffs *config.TariffConfigHolder
}

func New(table *ratesdomain.Table, tariffs *config.TariffConfigHolder) *Selector {
	return &Selector{table: table, tariffs: tariffs}
}

// Select returns the rate entry for a call. Domestic landline and mobile
// traffic is rated by class with flat override rates, bypassing the country
// lookup. International and unknown traffic rates by country code, with the
// economic access code preferred when requested; an unresolved destination
// or an empty country match falls back to the default rate.
func (s *Selector) Select(countryCode int, resolved bool, class cdrdomain.CallClass, economic bool) ratesdomain.RateEntry {
	tc := s.tariffs.Get()

	switch class {
	case cdrdomain.ClassLandline:
		return classOverrideRate("landline", tc.Landline)
	case cdrdomain.ClassMobile:
		return classOverrideRate("mobile", tc.Mobile)
	}

	if !resolved {
		return defaultRate(tc)
	}

	matches := s.table.ByCountry(countryCode)
	if len(matches) == 0 {
		return defaultRate(tc)
	}

	want := ratesdomain.AccessCodeStandard
	if economic {
		want = ratesdomain.AccessCodeEconomic
	}
	for _, m := range matches {
		if m.AccessCode == want {
			return m
		}
	}
	return matches[0]
}

func defaultRate(tc config.TariffConfig) ratesdomain.RateEntry {
	return ratesdomain.RateEntry{
		RateID:       "default",
		StandardRate: tc.Default.Standard,
		ReducedRate:  tc.Default.Reduced,
		Description:  "Default Rate",
		AccessCode:   ratesdomain.AccessCodeStandard,
	}
}

func classOverrideRate(name string, rate config.ClassRate) ratesdomain.RateEntry {
	return ratesdomain.RateEntry{
		RateID:       name,
		StandardRate: rate.Standard,
		ReducedRate:  rate.Reduced,
		Description:  "Domestic " + name + " rate",
		AccessCode:   ratesdomain.AccessCodeStandard,
	}
}
