package memory

import (
	"context"

	"chatdesk-be/internal/repository/contract"
	"chatdesk-be/internal/repository/unitofwork"
)

// UnitOfWorkMemory wires the in-memory repositories behind the UnitOfWork
// interface. Begin/Commit/Rollback are no-ops; the maps mutate in place, so
// tests observe exactly what a committed transaction would have written.
type UnitOfWorkMemory struct {
	Sessions      *ChatSessionRepositoryMemory
	Messages      *ChatMessageRepositoryMemory
	Notifications *NotificationRepositoryMemory
	Subscriptions *PushSubscriptionRepositoryMemory
	Access        *AccessRepositoryMemory
	Customers     *CustomerRepositoryMemory
	Directory     *DirectoryRepositoryMemory
}

func NewUnitOfWorkMemory() *UnitOfWorkMemory {
	return &UnitOfWorkMemory{
		Sessions:      NewChatSessionRepositoryMemory(),
		Messages:      NewChatMessageRepositoryMemory(),
		Notifications: NewNotificationRepositoryMemory(),
		Subscriptions: NewPushSubscriptionRepositoryMemory(),
		Access:        NewAccessRepositoryMemory(),
		Customers:     NewCustomerRepositoryMemory(),
		Directory:     NewDirectoryRepositoryMemory(),
	}
}

func (u *UnitOfWorkMemory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return u
}

func (u *UnitOfWorkMemory) Begin(ctx context.Context) error { return nil }
func (u *UnitOfWorkMemory) Commit() error                   { return nil }
func (u *UnitOfWorkMemory) Rollback() error                 { return nil }

func (u *UnitOfWorkMemory) ChatSessionRepository() contract.ChatSessionRepository {
	return u.Sessions
}

func (u *UnitOfWorkMemory) ChatMessageRepository() contract.ChatMessageRepository {
	return u.Messages
}

func (u *UnitOfWorkMemory) NotificationRepository() contract.NotificationRepository {
	return u.Notifications
}

func (u *UnitOfWorkMemory) PushSubscriptionRepository() contract.PushSubscriptionRepository {
	return u.Subscriptions
}

func (u *UnitOfWorkMemory) AccessRepository() contract.AccessRepository {
	return u.Access
}

func (u *UnitOfWorkMemory) CustomerRepository() contract.CustomerRepository {
	return u.Customers
}

func (u *UnitOfWorkMemory) DirectoryRepository() contract.DirectoryRepository {
	return u.Directory
}
