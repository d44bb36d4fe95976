package notes

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AgendaAuto-SchedulingService/internal/domain"
	notesRepo "github.com/m04kA/AgendaAuto-SchedulingService/internal/infra/storage/notes"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestService_Get_EmptyByDefault(t *testing.T) {
	svc := NewService(notesRepo.NewMemoryRepository(), "prof-1", noopLogger{})

	resp, err := svc.Get(context.Background())
	require.NoError(t, err)

	// Блок заметок видим по умолчанию, текста еще нет
	assert.Equal(t, "", resp.Text)
	assert.True(t, resp.ShowBlock)
}

func TestService_SaveAndGet(t *testing.T) {
	svc := NewService(notesRepo.NewMemoryRepository(), "prof-1", noopLogger{})
	ctx := context.Background()

	err := svc.Save(ctx, &SaveNotesRequest{Text: "ligar para Maria", ShowBlock: false})
	require.NoError(t, err)

	resp, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ligar para Maria", resp.Text)
	assert.False(t, resp.ShowBlock)
}

func TestService_Save_Overwrites(t *testing.T) {
	svc := NewService(notesRepo.NewMemoryRepository(), "prof-1", noopLogger{})
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, &SaveNotesRequest{Text: "first", ShowBlock: true}))
	require.NoError(t, svc.Save(ctx, &SaveNotesRequest{Text: "second", ShowBlock: true}))

	resp, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", resp.Text)
}

func TestService_Save_TooLong(t *testing.T) {
	svc := NewService(notesRepo.NewMemoryRepository(), "prof-1", noopLogger{})

	err := svc.Save(context.Background(), &SaveNotesRequest{
		Text:      strings.Repeat("a", domain.MaxNotesLength+1),
		ShowBlock: true,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotesTooLong)
}
