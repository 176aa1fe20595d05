package memory

import (
	"context"
	"strings"
	"sync"

	"chatdesk-be/internal/entity"

	"github.com/google/uuid"
)

// AccessRepositoryMemory is a fixture-backed identity store for tests.
type AccessRepositoryMemory struct {
	mu             sync.RWMutex
	Superadmins    map[string]bool
	Memberships    map[uuid.UUID][]*entity.UserMembership
	DashboardUsers []*entity.DashboardUser
}

func NewAccessRepositoryMemory() *AccessRepositoryMemory {
	return &AccessRepositoryMemory{
		Superadmins: make(map[string]bool),
		Memberships: make(map[uuid.UUID][]*entity.UserMembership),
	}
}

func (r *AccessRepositoryMemory) IsSuperadmin(ctx context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.Superadmins[strings.ToLower(email)], nil
}

func (r *AccessRepositoryMemory) FindMembershipsByUser(ctx context.Context, userId uuid.UUID) ([]*entity.UserMembership, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.Memberships[userId], nil
}

func (r *AccessRepositoryMemory) FindDashboardUserByUserId(ctx context.Context, userId uuid.UUID) (*entity.DashboardUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.DashboardUsers {
		if u.UserId == userId {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *AccessRepositoryMemory) FindDashboardUserByEmail(ctx context.Context, email string) (*entity.DashboardUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.DashboardUsers {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}
