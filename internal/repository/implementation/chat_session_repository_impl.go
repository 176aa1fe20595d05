package implementation

import (
	"context"
	"errors"

	"chatdesk-be/internal/entity"
	"chatdesk-be/internal/mapper"
	"chatdesk-be/internal/model"
	"chatdesk-be/internal/repository/contract"
	"chatdesk-be/internal/repository/scope"
	"chatdesk-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SessionMapper
}

func NewChatSessionRepository(db *gorm.DB) contract.ChatSessionRepository {
	return &ChatSessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewSessionMapper(),
	}
}

func applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// querySpecs translates the shared listing predicate into specifications.
// The visibility rules here mirror the dashboard load: deleted excluded,
// scope-restricted, suspicious hidden from non-superadmins.
func querySpecs(q contract.SessionQuery) []specification.Specification {
	specs := []specification.Specification{specification.NotDeleted{}}
	if !q.Superadmin {
		specs = append(specs,
			specification.ByCustomerIDs{CustomerIDs: q.CustomerIDs},
			specification.NotSuspicious{},
		)
	}
	if q.CustomerID != nil {
		specs = append(specs, specification.Filter("customer_id", *q.CustomerID))
	}
	if q.UnreadOnly {
		specs = append(specs, specification.UnreadOnly{})
	}
	if q.Search != "" {
		specs = append(specs, specification.GuestSearch{Query: q.Search})
	}
	return specs
}

func (r *ChatSessionRepositoryImpl) Create(ctx context.Context, session *entity.ChatSession) error {
	m := r.mapper.SessionToModel(session)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.SessionToEntity(m)
	return nil
}

func (r *ChatSessionRepositoryImpl) Update(ctx context.Context, session *entity.ChatSession) error {
	m := r.mapper.SessionToModel(session)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.SessionToEntity(m)
	return nil
}

func (r *ChatSessionRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.ChatSession, error) {
	var m model.ChatSession
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SessionToEntity(&m), nil
}

func (r *ChatSessionRepositoryImpl) FindAll(ctx context.Context, q contract.SessionQuery) ([]*entity.ChatSession, error) {
	var models []*model.ChatSession
	query := applySpecifications(r.db.WithContext(ctx), querySpecs(q)...)
	query = query.Scopes(scope.OrderByUpdatedDesc)
	if q.Limit > 0 {
		query = specification.Limit{N: q.Limit}.Apply(query)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.SessionsToEntities(models), nil
}

func (r *ChatSessionRepositoryImpl) Count(ctx context.Context, q contract.SessionQuery) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.ChatSession{}), querySpecs(q)...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ChatSessionRepositoryImpl) MarkAllRead(ctx context.Context, q contract.SessionQuery) (int64, error) {
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.ChatSession{}), querySpecs(q)...)
	res := query.Where("is_read = ?", false).Update("is_read", true)
	return res.RowsAffected, res.Error
}

func (r *ChatSessionRepositoryImpl) SetTyping(ctx context.Context, id uuid.UUID, staffTyping *bool, visitorTyping *bool) error {
	updates := map[string]interface{}{}
	if staffTyping != nil {
		updates["staff_typing"] = *staffTyping
	}
	if visitorTyping != nil {
		updates["visitor_typing"] = *visitorTyping
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&model.ChatSession{}).Where("id = ?", id).Updates(updates).Error
}
