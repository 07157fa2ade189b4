package settings

import (
	"context"
	"sync"

	"github.com/osse101/ExpTable_Go/internal/domain"
)

// Backend names reported by repositories
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Repository stores per-profile key/value settings. Writes are independent and
// the last write wins.
type Repository interface {
	// Get returns domain.ErrSettingNotFound when the key is absent
	Get(ctx context.Context, profile, key string) (string, error)
	GetAll(ctx context.Context, profile string) (map[string]string, error)
	Set(ctx context.Context, profile, key, value string) error
	Backend() string
}

// MemoryRepository keeps settings in process memory
type MemoryRepository struct {
	mu   sync.RWMutex
	data map[string]map[string]string
}

// NewMemoryRepository creates an empty in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{data: make(map[string]map[string]string)}
}

func (r *MemoryRepository) Get(_ context.Context, profile, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.data[profile][key]
	if !ok {
		return "", domain.ErrSettingNotFound
	}
	return v, nil
}

func (r *MemoryRepository) GetAll(_ context.Context, profile string) (map[string]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]string, len(r.data[profile]))
	for k, v := range r.data[profile] {
		out[k] = v
	}
	return out, nil
}

func (r *MemoryRepository) Set(_ context.Context, profile, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.data[profile] == nil {
		r.data[profile] = make(map[string]string)
	}
	r.data[profile][key] = value
	return nil
}

func (r *MemoryRepository) Backend() string { return BackendMemory }
