package propertyrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/monopolygame/monopolybot/internal/domain"
	"github.com/monopolygame/monopolybot/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const propertyColumns = `id, user_id, property_index, level, accumulated_mc, last_generated_at, last_claimed_at, purchased_at`

func scanProperty(row pgx.Row, p *domain.OwnedProperty) error {
	return row.Scan(
		&p.ID, &p.UserID, &p.PropertyIndex, &p.Level,
		&p.AccumulatedMC, &p.LastGeneratedAt, &p.LastClaimedAt, &p.PurchasedAt,
	)
}

func (r *Repository) Create(ctx context.Context, prop *domain.OwnedProperty) (*domain.OwnedProperty, error) {
	query := `
		INSERT INTO owned_properties (user_id, property_index, level, accumulated_mc, last_generated_at, purchased_at)
		VALUES ($1, $2, $3, 0, $4, $4)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, prop.UserID, prop.PropertyIndex, prop.Level, prop.PurchasedAt).Scan(&prop.ID)
	if err != nil {
		zap.L().Error("can't save owned property", zap.Error(err))
		return nil, err
	}
	return prop, nil
}

func (r *Repository) GetByUserAndIndex(ctx context.Context, userID int64, propertyIndex int) (*domain.OwnedProperty, error) {
	var prop domain.OwnedProperty
	query := `
		SELECT ` + propertyColumns + `
		FROM owned_properties
		WHERE user_id = $1 AND property_index = $2
	`
	err := scanProperty(r.db.QueryRow(ctx, query, userID, propertyIndex), &prop)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find owned property", zap.Error(err))
		return nil, err
	}
	return &prop, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]domain.OwnedProperty, error) {
	query := `
		SELECT ` + propertyColumns + `
		FROM owned_properties
		WHERE user_id = $1
		ORDER BY property_index
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch owned properties", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var props []domain.OwnedProperty
	for rows.Next() {
		var p domain.OwnedProperty
		if err := scanProperty(rows, &p); err != nil {
			zap.L().Error("failed to scan owned property row", zap.Error(err))
			return nil, err
		}
		props = append(props, p)
	}
	return props, rows.Err()
}

// ListDue returns properties whose last accrual point is at or before the
// cutoff, oldest first.
func (r *Repository) ListDue(ctx context.Context, cutoff time.Time, limit uint32) ([]domain.OwnedProperty, error) {
	query := `
		SELECT ` + propertyColumns + `
		FROM owned_properties
		WHERE last_generated_at <= $1
		ORDER BY last_generated_at
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, cutoff, limit)
	if err != nil {
		zap.L().Error("failed to fetch properties due for generation", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var props []domain.OwnedProperty
	for rows.Next() {
		var p domain.OwnedProperty
		if err := scanProperty(rows, &p); err != nil {
			zap.L().Error("failed to scan owned property row", zap.Error(err))
			return nil, err
		}
		props = append(props, p)
	}
	return props, rows.Err()
}

// ApplyEarnings merges accrued income and advances the accrual point in a
// single row update.
func (r *Repository) ApplyEarnings(ctx context.Context, propertyID int64, earnings float64, generatedAt time.Time) error {
	query := `
		UPDATE owned_properties
		SET accumulated_mc = accumulated_mc + $1, last_generated_at = $2
		WHERE id = $3
	`
	if _, err := r.db.Exec(ctx, query, earnings, generatedAt, propertyID); err != nil {
		zap.L().Error("can't apply earnings", zap.Error(err))
		return err
	}
	return nil
}

// UpdateLevel advances the level only while the row still holds the level
// the caller read. Returns false when another writer got there first.
func (r *Repository) UpdateLevel(ctx context.Context, propertyID int64, level, fromLevel int) (bool, error) {
	query := `
		UPDATE owned_properties
		SET level = $1
		WHERE id = $2 AND level = $3
	`
	tag, err := r.db.Exec(ctx, query, level, propertyID, fromLevel)
	if err != nil {
		zap.L().Error("can't update property level", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ResetAccrual zeroes the unclaimed accumulator and stamps both the accrual
// point and the claim time. The update is guarded on the accrual point the
// caller read; returns false when another writer advanced it first.
func (r *Repository) ResetAccrual(ctx context.Context, propertyID int64, expectedGeneratedAt, claimedAt time.Time) (bool, error) {
	query := `
		UPDATE owned_properties
		SET accumulated_mc = 0, last_generated_at = $1, last_claimed_at = $1
		WHERE id = $2 AND last_generated_at = $3
	`
	tag, err := r.db.Exec(ctx, query, claimedAt, propertyID, expectedGeneratedAt)
	if err != nil {
		zap.L().Error("can't reset property accrual", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
