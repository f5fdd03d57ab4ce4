package servicerepo

import (
	"context"

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

func (r *Repository) Create(ctx context.Context, svc *domain.OwnedService) (*domain.OwnedService, error) {
	query := `
		INSERT INTO owned_services (user_id, service_index, purchased_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, svc.UserID, svc.ServiceIndex, svc.PurchasedAt).Scan(&svc.ID)
	if err != nil {
		zap.L().Error("can't save owned service", zap.Error(err))
		return nil, err
	}
	return svc, nil
}

func (r *Repository) GetByUserAndIndex(ctx context.Context, userID int64, serviceIndex int) (*domain.OwnedService, error) {
	var svc domain.OwnedService
	query := `
		SELECT id, user_id, service_index, purchased_at
		FROM owned_services
		WHERE user_id = $1 AND service_index = $2
	`
	err := r.db.QueryRow(ctx, query, userID, serviceIndex).Scan(&svc.ID, &svc.UserID, &svc.ServiceIndex, &svc.PurchasedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find owned service", zap.Error(err))
		return nil, err
	}
	return &svc, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]domain.OwnedService, error) {
	query := `
		SELECT id, user_id, service_index, purchased_at
		FROM owned_services
		WHERE user_id = $1
		ORDER BY service_index
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch owned services", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var svcs []domain.OwnedService
	for rows.Next() {
		var s domain.OwnedService
		if err := rows.Scan(&s.ID, &s.UserID, &s.ServiceIndex, &s.PurchasedAt); err != nil {
			zap.L().Error("failed to scan owned service row", zap.Error(err))
			return nil, err
		}
		svcs = append(svcs, s)
	}
	return svcs, rows.Err()
}
