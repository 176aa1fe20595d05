package memory

import (
	"context"
	"sort"
	"sync"

	"chatdesk-be/internal/entity"

	"github.com/google/uuid"
)

type DirectoryRepositoryMemory struct {
	mu    sync.RWMutex
	Users []*entity.DashboardUser
	Teams []*entity.Team
}

func NewDirectoryRepositoryMemory() *DirectoryRepositoryMemory {
	return &DirectoryRepositoryMemory{}
}

func (r *DirectoryRepositoryMemory) FindUsersByCustomers(ctx context.Context, customerIds []uuid.UUID) ([]*entity.DashboardUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idSet := make(map[uuid.UUID]bool, len(customerIds))
	for _, id := range customerIds {
		idSet[id] = true
	}
	var out []*entity.DashboardUser
	for _, u := range r.Users {
		if idSet[u.CustomerId] {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *DirectoryRepositoryMemory) FindTeamsByCustomers(ctx context.Context, customerIds []uuid.UUID) ([]*entity.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idSet := make(map[uuid.UUID]bool, len(customerIds))
	for _, id := range customerIds {
		idSet[id] = true
	}
	var out []*entity.Team
	for _, t := range r.Teams {
		if idSet[t.CustomerId] {
			cp := *t
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *DirectoryRepositoryMemory) FindTeamById(ctx context.Context, id uuid.UUID) (*entity.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.Teams {
		if t.Id == id {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}
