package mysql

import (
	"context"
	"errors"
	"fmt"

	bankDomain "masar-mortgage/internal/domain/bank"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BankRepository struct{ db *gorm.DB }

func NewBankRepository(db *gorm.DB) *BankRepository { return &BankRepository{db: db} }

func (r *BankRepository) List(ctx context.Context) ([]bankDomain.Bank, error) {
	var out []bankDomain.Bank
	res := r.db.WithContext(ctx).Order("sort_order ASC, id ASC").Find(&out)
	return out, res.Error
}

func (r *BankRepository) GetByBankID(ctx context.Context, bankID string) (*bankDomain.Bank, error) {
	var out bankDomain.Bank
	res := r.db.WithContext(ctx).Where("bank_id = ?", bankID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", bankDomain.ErrNotFound, bankID)
	}
	return &out, res.Error
}

func (r *BankRepository) ListByBankIDs(ctx context.Context, ids []string) ([]bankDomain.Bank, error) {
	var rows []bankDomain.Bank
	if err := r.db.WithContext(ctx).Where("bank_id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	byID := make(map[string]bankDomain.Bank, len(rows))
	for _, b := range rows {
		byID[b.BankID] = b
	}

	out := make([]bankDomain.Bank, 0, len(ids))
	for _, id := range ids {
		b, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", bankDomain.ErrNotFound, id)
		}
		out = append(out, b)
	}
	return out, nil
}

// Upsert keys on bank_id so re-seeding the catalog updates rates in place.
func (r *BankRepository) Upsert(ctx context.Context, b *bankDomain.Bank) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "bank_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "annual_rate_percent", "color_hex", "sort_order", "updated_at"}),
		}).
		Create(b).Error
}
