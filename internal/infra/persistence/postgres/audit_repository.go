// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"

	"easy/internal/domain/entity"
	domainerrors "easy/internal/domain/errors"
	"easy/internal/domain/repository"
	"easy/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// auditRepository implements the domain.AuditRepository interface using GORM.
type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository is the constructor for auditRepository.
func NewAuditRepository(db *gorm.DB) repository.AuditRepository {
	return &auditRepository{db: db}
}

// CreateAuditLog appends a single audit entry. The table is append-only;
// nothing in this service updates or deletes audit rows.
func (repo *auditRepository) CreateAuditLog(ctx context.Context, log *entity.AuditLog) error {
	logM, err := fromAuditLogDomain(log)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create audit log")
	}

	log.ID = logM.ID
	log.CreatedAt = logM.CreatedAt

	return nil
}

// fromAuditLogDomain converts a domain AuditLog entity to a GORM AuditLogModel.
func fromAuditLogDomain(data *entity.AuditLog) (*model.AuditLogModel, error) {
	if data == nil {
		return nil, nil
	}

	payloadJSON := ""
	if len(data.Payload) > 0 {
		raw, err := json.Marshal(data.Payload)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode audit payload")
		}
		payloadJSON = string(raw)
	}

	return &model.AuditLogModel{
		ID:          data.ID,
		ActorUserID: data.ActorUserID,
		TableName_:  data.TableName,
		RecordID:    data.RecordID,
		Action:      data.Action,
		PayloadJSON: payloadJSON,
	}, nil
}
