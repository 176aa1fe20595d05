package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BySessionID filters child rows (messages, notifications) by session.
type BySessionID struct {
	SessionID uuid.UUID
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}

// NotDeleted excludes soft-deleted sessions from every listing.
type NotDeleted struct{}

func (s NotDeleted) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status <> ?", "deleted")
}

// ByCustomerIDs restricts rows to the caller's visibility scope.
type ByCustomerIDs struct {
	CustomerIDs []uuid.UUID
}

func (s ByCustomerIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("customer_id IN ?", s.CustomerIDs)
}

// NotSuspicious hides flagged sessions from non-superadmin viewers.
type NotSuspicious struct{}

func (s NotSuspicious) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("suspicious IS NOT TRUE")
}

// UnreadOnly keeps sessions the staff has not opened yet.
type UnreadOnly struct{}

func (s UnreadOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_read = ?", false)
}

// GuestSearch matches the free-text dashboard search against the guest
// contact block and the visitor id.
type GuestSearch struct {
	Query string
}

func (s GuestSearch) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Where(
		"metadata->>'guest_name' ILIKE ? OR metadata->>'guest_email' ILIKE ? OR metadata->>'guest_phone' ILIKE ? OR visitor_id ILIKE ?",
		pattern, pattern, pattern, pattern,
	)
}
