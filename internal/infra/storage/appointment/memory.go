package appointment

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/AgendaAuto-SchedulingService/internal/domain"
)

// MemoryRepository хранилище записей в памяти процесса
// Режим по умолчанию (database.enabled = false): коллекция живет в течение
// сессии сервиса и не переживает перезапуск. Семантика copy-on-read:
// наружу отдаются только копии, мутации возможны только через методы
// репозитория
type MemoryRepository struct {
	mu           sync.RWMutex
	appointments map[string]*domain.Appointment
	order        []string // Порядок вставки для стабильной выдачи
}

// NewMemoryRepository создает пустое in-memory хранилище записей
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		appointments: make(map[string]*domain.Appointment),
	}
}

// Create создает новую запись
// Дубликаты по клиенту/дате/времени допустимы: дедупликации нет
func (r *MemoryRepository) Create(_ context.Context, apt *domain.Appointment) (*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	stored := apt.Clone()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	r.appointments[stored.ID] = stored
	r.order = append(r.order, stored.ID)

	return stored.Clone(), nil
}

// GetByID получает запись по ID
func (r *MemoryRepository) GetByID(_ context.Context, id string) (*domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	apt, ok := r.appointments[id]
	if !ok {
		return nil, ErrAppointmentNotFound
	}

	return apt.Clone(), nil
}

// List возвращает снимок коллекции с опциональной фильтрацией
// Мутации возвращенного слайса не влияют на хранилище
func (r *MemoryRepository) List(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Appointment, 0, len(r.order))
	for _, id := range r.order {
		apt := r.appointments[id]

		if filter.Status != nil && apt.Status != *filter.Status {
			continue
		}
		if filter.Date != nil && !sameDay(apt.Date, *filter.Date) {
			continue
		}

		result = append(result, apt.Clone())
	}

	return result, nil
}

// UpdateStatus обновляет статус записи
func (r *MemoryRepository) UpdateStatus(_ context.Context, id string, status domain.AppointmentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	apt, ok := r.appointments[id]
	if !ok {
		return ErrAppointmentNotFound
	}

	apt.Status = status
	apt.UpdatedAt = time.Now()

	return nil
}

// sameDay проверяет, что два момента относятся к одному календарному дню
func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.In(a.Location()).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
