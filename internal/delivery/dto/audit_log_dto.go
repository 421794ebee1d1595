package dto

import (
	"time"

	"health-records-backend/internal/domain/entity"

	"github.com/google/uuid"
)

type AuditLogResponse struct {
	ID        int64       `json:"id"`
	UserID    *uuid.UUID  `json:"user_id,omitempty"`
	Action    string      `json:"action"`
	Metadata  entity.JSON `json:"metadata,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}
