package notes

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/AgendaAuto-SchedulingService/internal/domain"
	notesRepo "github.com/m04kA/AgendaAuto-SchedulingService/internal/infra/storage/notes"
)

// NotesResponse заметки профессионала
type NotesResponse struct {
	Text      string `json:"text"`
	ShowBlock bool   `json:"showBlock"`
}

// SaveNotesRequest запрос на сохранение заметок
type SaveNotesRequest struct {
	Text      string `json:"text"`
	ShowBlock bool   `json:"showBlock"`
}

// Service сервис блокнота профессионала
// Заметки — единственные данные, которые оригинальный дашборд сохранял
// между сессиями
type Service struct {
	repo           NotesRepository
	professionalID string
	logger         Logger
}

// NewService создает новый экземпляр сервиса заметок
func NewService(repo NotesRepository, professionalID string, logger Logger) *Service {
	return &Service{
		repo:           repo,
		professionalID: professionalID,
		logger:         logger,
	}
}

// Get возвращает заметки профессионала
// Если заметки еще не сохранялись, возвращает пустой блок с видимостью по умолчанию
func (s *Service) Get(ctx context.Context) (*NotesResponse, error) {
	n, err := s.repo.Get(ctx, s.professionalID)
	if err != nil {
		if errors.Is(err, notesRepo.ErrNotesNotFound) {
			return &NotesResponse{Text: "", ShowBlock: true}, nil
		}
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return &NotesResponse{Text: n.Text, ShowBlock: n.ShowBlock}, nil
}

// Save сохраняет заметки профессионала
func (s *Service) Save(ctx context.Context, req *SaveNotesRequest) error {
	if len(req.Text) > domain.MaxNotesLength {
		s.logger.Warn("Save: notes text too long: %d chars", len(req.Text))
		return ErrNotesTooLong
	}

	err := s.repo.Save(ctx, &notesRepo.Notes{
		ProfessionalID: s.professionalID,
		Text:           req.Text,
		ShowBlock:      req.ShowBlock,
	})
	if err != nil {
		s.logger.Error("Save: repository error: %v", err)
		return fmt.Errorf("%w: Save - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Save: notes saved, %d chars, show_block=%t", len(req.Text), req.ShowBlock)
	return nil
}
