package get_notes

import (
	"context"

	"github.com/m04kA/AgendaAuto-SchedulingService/internal/service/notes"
)

type NotesService interface {
	Get(ctx context.Context) (*notes.NotesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
