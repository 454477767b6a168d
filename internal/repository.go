package internal

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type IRepository interface {
	SavePoints(context.Context, string, int) error
	GetPoints(context.Context, string) (int, error)
}

// Repository keeps points in process memory. Records are write-once and are
// lost on restart.
type Repository struct {
	mu      sync.RWMutex
	records map[string]int
	logger  *zap.SugaredLogger
}

func NewRepository(logger *zap.SugaredLogger) *Repository {
	return &Repository{records: make(map[string]int), logger: logger}
}

func (r *Repository) SavePoints(_ context.Context, id string, points int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; ok {
		return ErrDuplicateID
	}
	r.records[id] = points

	r.logger.Debugf("saved receipt %s with %d points", id, points)
	return nil
}

func (r *Repository) GetPoints(_ context.Context, id string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	points, ok := r.records[id]
	if !ok {
		return 0, ErrNotFound
	}
	return points, nil
}

func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}
