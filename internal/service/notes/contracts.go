package notes

import (
	"context"

	notesRepo "github.com/m04kA/AgendaAuto-SchedulingService/internal/infra/storage/notes"
)

// NotesRepository интерфейс репозитория заметок
type NotesRepository interface {
	Get(ctx context.Context, professionalID string) (*notesRepo.Notes, error)
	Save(ctx context.Context, n *notesRepo.Notes) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
