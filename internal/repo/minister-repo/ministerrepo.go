package ministerrepo

import (
	"context"
	"errors"
	"time"

	"github.com/kepha-wiz/ministers/internal/domain"
	"github.com/kepha-wiz/ministers/internal/pg"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const ministerColumns = "id, full_name, department, phone, email, date_joined, total_savings, created_at, updated_at"

func scanMinister(row pgx.Row, m *domain.Minister) error {
	return row.Scan(&m.ID, &m.FullName, &m.Department, &m.Phone, &m.Email, &m.DateJoined, &m.TotalSavings, &m.CreatedAt, &m.UpdatedAt)
}

// FindAll returns every minister, or only those whose full name or department
// contains the search term (case-insensitive) when one is given.
func (r *Repository) FindAll(ctx context.Context, search string) ([]domain.Minister, error) {
	query := `
        SELECT ` + ministerColumns + `
        FROM ministers
        ORDER BY id ASC
    `
	args := []any{}
	if search != "" {
		query = `
        SELECT ` + ministerColumns + `
        FROM ministers
        WHERE full_name ILIKE '%' || $1 || '%' OR department ILIKE '%' || $1 || '%'
        ORDER BY id ASC
    `
		args = append(args, search)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get ministers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ministers []domain.Minister
	for rows.Next() {
		var m domain.Minister
		if err := scanMinister(rows, &m); err != nil {
			zap.L().Error("can't scan minister row", zap.Error(err))
			return nil, err
		}
		ministers = append(ministers, m)
	}
	return ministers, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Minister, error) {
	query := `
        SELECT ` + ministerColumns + `
        FROM ministers
        WHERE id = $1
    `
	var m domain.Minister
	err := scanMinister(r.db.QueryRow(ctx, query, id), &m)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find minister", zap.Error(err))
		return nil, err
	}
	return &m, nil
}

func (r *Repository) Create(ctx context.Context, minister *domain.Minister) (*domain.Minister, error) {
	query := `
		INSERT INTO ministers (full_name, department, phone, email, date_joined)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, minister.FullName, minister.Department, minister.Phone, minister.Email, minister.DateJoined).
		Scan(&minister.ID, &minister.CreatedAt, &minister.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save minister", zap.Error(err))
		return nil, err
	}
	return minister, nil
}

func (r *Repository) Update(ctx context.Context, minister *domain.Minister) error {
	query := `
        UPDATE ministers
        SET full_name = $1, department = $2, phone = $3, email = $4, date_joined = $5, updated_at = $6
        WHERE id = $7
    `
	_, err := r.db.Exec(ctx, query,
		minister.FullName, minister.Department, minister.Phone, minister.Email, minister.DateJoined, time.Now(), minister.ID)
	if err != nil {
		zap.L().Error("can't update minister", zap.Error(err))
		return err
	}
	return nil
}

// Delete removes the minister; its payments go with it via ON DELETE CASCADE.
func (r *Repository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, "DELETE FROM ministers WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete minister", zap.Error(err))
		return err
	}
	return nil
}

// RecalculateTotalSavings rewrites total_savings from the payment rows. An
// empty payment set writes 0, never NULL.
func (r *Repository) RecalculateTotalSavings(ctx context.Context, ministerID int) error {
	query := `
        UPDATE ministers
        SET total_savings = COALESCE((SELECT SUM(amount) FROM payments WHERE minister_id = $1), 0)
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, ministerID)
	if err != nil {
		zap.L().Error("can't recalculate total savings", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM ministers").Scan(&count)
	if err != nil {
		zap.L().Error("can't count ministers", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// FindTopSavers returns ministers ordered by total_savings descending.
func (r *Repository) FindTopSavers(ctx context.Context, limit int) ([]domain.Minister, error) {
	query := `
        SELECT ` + ministerColumns + `
        FROM ministers
        ORDER BY total_savings DESC, id ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't get top savers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ministers []domain.Minister
	for rows.Next() {
		var m domain.Minister
		if err := scanMinister(rows, &m); err != nil {
			zap.L().Error("can't scan minister row", zap.Error(err))
			return nil, err
		}
		ministers = append(ministers, m)
	}
	return ministers, nil
}
