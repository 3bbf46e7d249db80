// Package domain contains the rate table reference data used for rating.
package domain

// Access codes distinguishing the tariff variant of a rate row.
const (
	AccessCodeStandard = "0"
	AccessCodeEconomic = "95"
)

// RateEntry is one row of the rate table: a destination dial plan with its
// per-minute standard and reduced rates. Rows are read-only reference data
// loaded once per run and shared by the pipeline.
type RateEntry struct {
	RateID          string  `json:"rateId" gorm:"column:rate_id;primaryKey"`
	CountryCode     int     `json:"countryCode" gorm:"not null;index"`
	StandardRate    float64 `json:"standardRate" gorm:"not null"`
	ReducedRate     float64 `json:"reducedRate" gorm:"not null"`
	Description     string  `json:"description" gorm:"type:text"`
	DialPlan        string  `json:"dialPlan" gorm:"not null;index"`
	ChargingBlockID string  `json:"chargingBlockId" gorm:"column:charging_block_id"`
	AccessCode      string  `json:"accessCode" gorm:"not null;default:'0'"`
}

// TableName sets the database table name.
func (RateEntry) TableName() string { return "cdr_rates" }

// Economic reports whether this row is the discounted-access variant.
func (r RateEntry) Economic() bool { return r.AccessCode == AccessCodeEconomic }

// Table is an immutable in-memory index over the rate entries. It is built
// once per run; concurrent readers need no locking since no writer exists
// after load.
type Table struct {
	entries    []RateEntry
	byDialPlan map[string][]RateEntry
	byCountry  map[int][]RateEntry
}

func NewTable(entries []RateEntry) *Table {
	t := &Table{
		entries:    entries,
		byDialPlan: make(map[string][]RateEntry),
		byCountry:  make(map[int][]RateEntry),
	}
	for _, e := range entries {
		t.byDialPlan[e.DialPlan] = append(t.byDialPlan[e.DialPlan], e)
		t.byCountry[e.CountryCode] = append(t.byCountry[e.CountryCode], e)
	}
	return t
}

// ByDialPlan returns the entries whose dial plan equals the candidate
// prefix exactly.
func (t *Table) ByDialPlan(prefix string) []RateEntry {
	return t.byDialPlan[prefix]
}

// ByCountry returns the entries for a country code, one per access-code
// variant.
func (t *Table) ByCountry(countryCode int) []RateEntry {
	return t.byCountry[countryCode]
}

func (t *Table) Len() int { return len(t.entries) }
