package unitofwork

import (
	"context"

	"chatdesk-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ChatSessionRepository() contract.ChatSessionRepository
	ChatMessageRepository() contract.ChatMessageRepository
	NotificationRepository() contract.NotificationRepository
	PushSubscriptionRepository() contract.PushSubscriptionRepository
	AccessRepository() contract.AccessRepository
	CustomerRepository() contract.CustomerRepository
	DirectoryRepository() contract.DirectoryRepository
}
