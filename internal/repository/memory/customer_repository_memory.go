package memory

import (
	"context"
	"sort"
	"sync"

	"chatdesk-be/internal/entity"

	"github.com/google/uuid"
)

type CustomerRepositoryMemory struct {
	mu        sync.RWMutex
	customers map[uuid.UUID]*entity.Customer
}

func NewCustomerRepositoryMemory() *CustomerRepositoryMemory {
	return &CustomerRepositoryMemory{
		customers: make(map[uuid.UUID]*entity.Customer),
	}
}

func (r *CustomerRepositoryMemory) Add(c *entity.Customer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.Id == uuid.Nil {
		c.Id = uuid.New()
	}
	cp := *c
	r.customers[c.Id] = &cp
}

func (r *CustomerRepositoryMemory) FindById(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *CustomerRepositoryMemory) FindByIds(ctx context.Context, ids []uuid.UUID) ([]*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Customer
	for _, id := range ids {
		if c, ok := r.customers[id]; ok {
			cp := *c
			out = append(out, &cp)
		}
	}
	sortCustomers(out)
	return out, nil
}

func (r *CustomerRepositoryMemory) FindByOrganization(ctx context.Context, organizationId uuid.UUID) ([]*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Customer
	for _, c := range r.customers {
		if c.OrganizationId != nil && *c.OrganizationId == organizationId {
			cp := *c
			out = append(out, &cp)
		}
	}
	sortCustomers(out)
	return out, nil
}

func (r *CustomerRepositoryMemory) FindAll(ctx context.Context) ([]*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Customer
	for _, c := range r.customers {
		cp := *c
		out = append(out, &cp)
	}
	sortCustomers(out)
	return out, nil
}

func sortCustomers(customers []*entity.Customer) {
	sort.Slice(customers, func(i, j int) bool {
		return customers[i].Name < customers[j].Name
	})
}
