package update_notes

import (
	"context"

	"github.com/m04kA/AgendaAuto-SchedulingService/internal/service/notes"
)

type NotesService interface {
	Save(ctx context.Context, req *notes.SaveNotesRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
