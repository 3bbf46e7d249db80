package repository

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	ratesdomain "github.com/hexatel/callrater/internal/rates/domain"
)

// ParseJSON reads a rate table in the cdr-rates JSON format (an array of
// rate objects).
func ParseJSON(r io.Reader) ([]ratesdomain.RateEntry, error) {
	var entries []ratesdomain.RateEntry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("parse cdr rates: %w", err)
	}
	return entries, nil
}

// LoadFile reads a cdr-rates JSON file from disk.
func LoadFile(path string) ([]ratesdomain.RateEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open cdr rates: %w", err)
	}
	defer f.Close()
	return ParseJSON(f)
}
