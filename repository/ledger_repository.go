package repository

import (
	"context"
	"fmt"
	"time"

	"hotelops/models"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

// LedgerRepository ghi bằng gorm, đọc cửa sổ thời gian bằng sqlx trên cùng connection pool
type LedgerRepository struct {
	db *gorm.DB
	rx *sqlx.DB
}

func NewLedgerRepository(db *gorm.DB) (*LedgerRepository, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("không thể lấy sql.DB từ gorm: %w", err)
	}
	return &LedgerRepository{db: db, rx: sqlx.NewDb(sqlDB, "postgres")}, nil
}

func (r *LedgerRepository) CreateEntry(ctx context.Context, e *models.LedgerEntry) error {
	if err := r.db.WithContext(ctx).Create(e).Error; err != nil {
		return fmt.Errorf("không thể ghi sổ cái: %w", err)
	}
	return nil
}

type ledgerRow struct {
	ID          uint      `db:"id"`
	EntryType   string    `db:"entry_type"`
	Category    string    `db:"category"`
	Amount      float64   `db:"amount"`
	Date        time.Time `db:"date"`
	BookingID   *uint     `db:"booking_id"`
	Description *string   `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

const entriesBetweenQuery = `
SELECT id, entry_type, category, amount, date, booking_id, description, created_at
FROM ledger_entries
WHERE date >= $1 AND date <= $2
ORDER BY date, id`

// EntriesBetween trả về các bút toán có date trong [from, to]
func (r *LedgerRepository) EntriesBetween(ctx context.Context, from, to time.Time) ([]models.LedgerEntry, error) {
	var rows []ledgerRow
	if err := r.rx.SelectContext(ctx, &rows, entriesBetweenQuery, from, to); err != nil {
		return nil, fmt.Errorf("không thể đọc sổ cái: %w", err)
	}

	entries := make([]models.LedgerEntry, 0, len(rows))
	for _, row := range rows {
		e := models.LedgerEntry{
			ID:        row.ID,
			EntryType: models.EntryType(row.EntryType),
			Category:  row.Category,
			Amount:    row.Amount,
			Date:      row.Date,
			BookingID: row.BookingID,
			CreatedAt: row.CreatedAt,
		}
		if row.Description != nil {
			e.Description = *row.Description
		}
		entries = append(entries, e)
	}
	return entries, nil
}
