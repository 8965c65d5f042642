package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"regexp"
)

//go:embed banks.json
var defaultCatalog []byte

type BankEntry struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Rate  float64 `json:"rate"`
	Color string  `json:"color"`
}

type catalogFile struct {
	Banks []BankEntry `json:"banks"`
}

var (
	reBankID = regexp.MustCompile(`^[a-z0-9_-]{1,32}$`)
	reColor  = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// LoadBankCatalog reads the catalog from path, or the built-in catalog when
// path is empty. Order in the file is catalog order.
func LoadBankCatalog(path string) ([]BankEntry, error) {
	raw := defaultCatalog
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read bank catalog: %w", err)
		}
		raw = b
	}
	return ParseBankCatalog(raw)
}

func ParseBankCatalog(raw []byte) ([]BankEntry, error) {
	var f catalogFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("unmarshal bank catalog: %w", err)
	}
	if len(f.Banks) == 0 {
		return nil, errors.New("bank catalog has no banks")
	}

	seen := make(map[string]struct{}, len(f.Banks))
	for i, b := range f.Banks {
		if !reBankID.MatchString(b.ID) {
			return nil, fmt.Errorf("bank %d: invalid id %q", i, b.ID)
		}
		if _, dup := seen[b.ID]; dup {
			return nil, fmt.Errorf("bank %d: duplicate id %q", i, b.ID)
		}
		seen[b.ID] = struct{}{}
		if b.Name == "" {
			return nil, fmt.Errorf("bank %s: missing name", b.ID)
		}
		if math.IsNaN(b.Rate) || b.Rate < 0 || b.Rate > 100 {
			return nil, fmt.Errorf("bank %s: rate %v out of range", b.ID, b.Rate)
		}
		if b.Color != "" && !reColor.MatchString(b.Color) {
			return nil, fmt.Errorf("bank %s: invalid color %q", b.ID, b.Color)
		}
	}
	return f.Banks, nil
}
