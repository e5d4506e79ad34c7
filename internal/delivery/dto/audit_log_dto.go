package dto

import (
	"time"

	"health-automation-backend/internal/domain/entity"
)

// Response DTOs

// AuditLogResponse lifts the audited entity out of the metadata so the
// trail can be read without unpacking it.
type AuditLogResponse struct {
	ID        int64         `json:"id"`
	ActorID   *int64        `json:"actor_id"`
	Actor     *UserResponse `json:"actor,omitempty"`
	Action    string        `json:"action"`
	Entity    string        `json:"entity,omitempty"`
	EntityID  string        `json:"entity_id,omitempty"`
	Metadata  entity.JSON   `json:"metadata"`
	CreatedAt time.Time     `json:"created_at"`
}
