package bank

import (
	"errors"
	"time"

	"masar-mortgage/internal/domain/mortgage"
)

var (
	ErrNotFound     = errors.New("bank not found")
	ErrEmptyCatalog = errors.New("bank catalog is empty")
)

// Table: banks
type Bank struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier used by clients ("alrajhi", "snb", ...)
	BankID            string    `gorm:"column:bank_id;size:32;not null;uniqueIndex:ux_banks_bank_id" json:"id"`
	Name              string    `gorm:"column:name;size:128;not null" json:"name"`
	AnnualRatePercent float64   `gorm:"column:annual_rate_percent;type:decimal(6,3);not null" json:"rate"`
	ColorHex          string    `gorm:"column:color_hex;size:7" json:"color,omitempty"`
	SortOrder         int       `gorm:"column:sort_order;not null;default:0;index" json:"-"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Bank) TableName() string { return "banks" }

// ToDomain drops persistence fields.
func (b Bank) ToDomain() mortgage.Bank {
	return mortgage.Bank{ID: b.BankID, Name: b.Name, AnnualRatePercent: b.AnnualRatePercent}
}

func ToDomainList(in []Bank) []mortgage.Bank {
	out := make([]mortgage.Bank, len(in))
	for i, b := range in {
		out[i] = b.ToDomain()
	}
	return out
}
