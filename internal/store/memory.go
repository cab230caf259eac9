package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/agil-auth/internal/utils"
	"github.com/MKhiriev/agil-auth/models"
)

// MemoryUserRepository is the in-process implementation of [UserRepository].
// Data lives for the process lifetime only; it backs "memory://" DSNs and
// tests.
type MemoryUserRepository struct {
	mu      sync.RWMutex
	byEmail map[string]models.User
	ids     IDGenerator
	now     func() time.Time
}

// NewMemoryUserRepository constructs an empty in-memory [UserRepository].
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		byEmail: make(map[string]models.User),
		ids:     utils.NewUUIDGenerator(),
		now:     time.Now,
	}
}

// CreateUser implements [UserRepository]. The check and insert happen under
// one write lock.
func (m *MemoryUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	user.Email = NormalizeEmail(user.Email)

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byEmail[user.Email]; exists {
		return models.User{}, ErrEmailAlreadyExists
	}

	user.UserID = m.ids.Generate()
	user.CreatedAt = m.now().UTC()
	m.byEmail[user.Email] = user

	return user, nil
}

// FindUserByEmail implements [UserRepository].
func (m *MemoryUserRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	user, ok := m.byEmail[NormalizeEmail(email)]
	m.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	return &user, nil
}

// Ping implements [HealthChecker]. The memory store is always reachable.
func (m *MemoryUserRepository) Ping(ctx context.Context) error {
	return ctx.Err()
}
