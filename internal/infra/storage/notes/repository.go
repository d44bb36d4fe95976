package notes

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/AgendaAuto-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/AgendaAuto-SchedulingService/pkg/psqlbuilder"
)

// Notes заметки профессионала (аналог localStorage оригинального дашборда)
type Notes struct {
	ProfessionalID string
	Text           string
	ShowBlock      bool
}

// Repository PostgreSQL репозиторий заметок
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория заметок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает заметки профессионала
func (r *Repository) Get(ctx context.Context, professionalID string) (*Notes, error) {
	query, args, err := psqlbuilder.Select(
		"professional_id",
		"text",
		"show_block",
	).
		From("notes").
		Where(squirrel.Eq{"professional_id": professionalID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var n Notes
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&n.ProfessionalID,
		&n.Text,
		&n.ShowBlock,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotesNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan notes: %v", ErrScanRow, err)
	}

	return &n, nil
}

// Save сохраняет заметки профессионала (upsert)
func (r *Repository) Save(ctx context.Context, n *Notes) error {
	query, args, err := psqlbuilder.Insert("notes").
		Columns(
			"professional_id",
			"text",
			"show_block",
		).
		Values(
			n.ProfessionalID,
			n.Text,
			n.ShowBlock,
		).
		Suffix("ON CONFLICT (professional_id) DO UPDATE SET text = EXCLUDED.text, show_block = EXCLUDED.show_block, updated_at = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
