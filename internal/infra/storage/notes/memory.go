package notes

import (
	"context"
	"sync"
)

// MemoryRepository хранилище заметок в памяти процесса
// Используется, когда долговременное хранение отключено
type MemoryRepository struct {
	mu    sync.RWMutex
	notes map[string]*Notes
}

// NewMemoryRepository создает пустое in-memory хранилище заметок
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		notes: make(map[string]*Notes),
	}
}

// Get получает заметки профессионала
func (r *MemoryRepository) Get(_ context.Context, professionalID string) (*Notes, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.notes[professionalID]
	if !ok {
		return nil, ErrNotesNotFound
	}

	clone := *n
	return &clone, nil
}

// Save сохраняет заметки профессионала
func (r *MemoryRepository) Save(_ context.Context, n *Notes) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *n
	r.notes[n.ProfessionalID] = &clone

	return nil
}
