package usecase

import (
	"context"

	"health-records-backend/internal/converter"
	"health-records-backend/internal/delivery/dto"
	"health-records-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuditLogUsecase interface {
	GetAuditLogs(ctx context.Context, page, limit int) ([]dto.AuditLogResponse, int64, error)
}

type auditLogUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	auditLogRepo repository.AuditLogRepository,
) AuditLogUsecase {
	return &auditLogUsecase{
		db:           db,
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

func (u *auditLogUsecase) GetAuditLogs(ctx context.Context, page, limit int) ([]dto.AuditLogResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	logs, total, err := u.auditLogRepo.FindPage(u.db.WithContext(ctx), (page-1)*limit, limit)
	if err != nil {
		u.log.Warnf("Failed to find audit logs: %+v", err)
		return nil, 0, err
	}

	return converter.AuditLogsToResponses(logs), total, nil
}
