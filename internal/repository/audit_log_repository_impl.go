package repository

import (
	"context"

	"go-clinic-records/internal/domain/entity"
	domainRepo "go-clinic-records/internal/domain/repository"
	"go-clinic-records/internal/infrastructure/storage"

	"github.com/google/uuid"
)

type auditLogRepository struct {
	store *storage.JSONStore[entity.AuditLog]
}

func NewAuditLogRepository(store *storage.JSONStore[entity.AuditLog]) domainRepo.AuditLogRepository {
	return &auditLogRepository{store: store}
}

func (r *auditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	logs, err := loadCollection(ctx, r.store)
	if err != nil {
		return err
	}
	return r.store.Save(ctx, append(logs, *log))
}

func (r *auditLogRepository) FindAll(ctx context.Context) ([]entity.AuditLog, error) {
	return loadCollection(ctx, r.store)
}

// FindByID returns nil, nil when no entry has the id.
func (r *auditLogRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AuditLog, error) {
	logs, err := loadCollection(ctx, r.store)
	if err != nil {
		return nil, err
	}
	for i := range logs {
		if logs[i].ID == id {
			return &logs[i], nil
		}
	}
	return nil, nil
}
