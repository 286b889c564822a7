// internal/storage/memory.go
package storage

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	apperrors "qsrhire/internal/common/errors"
	"qsrhire/internal/models"
)

// Memory is the in-process Gateway implementation. Id assignment and
// insertion happen under one lock, so concurrent creates never share
// an id.
type Memory struct {
	mu          sync.RWMutex
	workers     map[string]models.WorkerRegistration
	employers   map[string]models.EmployerRegistration
	franchisees map[string]models.FranchiseeRegistration
}

func NewMemory() *Memory {
	return &Memory{
		workers:     make(map[string]models.WorkerRegistration),
		employers:   make(map[string]models.EmployerRegistration),
		franchisees: make(map[string]models.FranchiseeRegistration),
	}
}

func (m *Memory) CreateWorkerRegistration(ctx context.Context, draft models.WorkerDraft) (*models.WorkerRegistration, error) {
	defer observe("create_worker", time.Now())

	record := models.WorkerRegistration{
		ID:          uuid.New().String(),
		WorkerDraft: draft,
		Status:      models.RegistrationPending,
	}

	m.mu.Lock()
	m.workers[record.ID] = record
	m.mu.Unlock()

	return &record, nil
}

func (m *Memory) GetWorkerRegistration(ctx context.Context, id string) (*models.WorkerRegistration, error) {
	defer observe("get_worker", time.Now())

	m.mu.RLock()
	record, ok := m.workers[id]
	m.mu.RUnlock()
	if !ok {
		return nil, apperrors.NewRegistrationNotFoundError(id)
	}
	return &record, nil
}

func (m *Memory) CreateEmployerRegistration(ctx context.Context, draft models.EmployerDraft) (*models.EmployerRegistration, error) {
	defer observe("create_employer", time.Now())

	record := models.EmployerRegistration{
		ID:            uuid.New().String(),
		EmployerDraft: draft,
		Status:        models.RegistrationPending,
	}

	m.mu.Lock()
	m.employers[record.ID] = record
	m.mu.Unlock()

	return &record, nil
}

func (m *Memory) GetEmployerRegistration(ctx context.Context, id string) (*models.EmployerRegistration, error) {
	defer observe("get_employer", time.Now())

	m.mu.RLock()
	record, ok := m.employers[id]
	m.mu.RUnlock()
	if !ok {
		return nil, apperrors.NewRegistrationNotFoundError(id)
	}
	return &record, nil
}

func (m *Memory) CreateFranchiseeRegistration(ctx context.Context, draft models.FranchiseeDraft) (*models.FranchiseeRegistration, error) {
	defer observe("create_franchisee", time.Now())

	record := models.FranchiseeRegistration{
		ID:              uuid.New().String(),
		FranchiseeDraft: draft,
		Status:          models.RegistrationPending,
	}

	m.mu.Lock()
	m.franchisees[record.ID] = record
	m.mu.Unlock()

	return &record, nil
}

func (m *Memory) GetFranchiseeRegistration(ctx context.Context, id string) (*models.FranchiseeRegistration, error) {
	defer observe("get_franchisee", time.Now())

	m.mu.RLock()
	record, ok := m.franchisees[id]
	m.mu.RUnlock()
	if !ok {
		return nil, apperrors.NewRegistrationNotFoundError(id)
	}
	return &record, nil
}
