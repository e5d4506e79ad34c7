package converter

import (
	"health-automation-backend/internal/delivery/dto"
	"health-automation-backend/internal/domain/entity"
)

func AuditLogToResponse(log *entity.AuditLog) *dto.AuditLogResponse {
	if log == nil {
		return nil
	}

	return &dto.AuditLogResponse{
		ID:        log.ID,
		ActorID:   log.UserID,
		Actor:     UserToResponse(log.User),
		Action:    log.Action,
		Entity:    metadataString(log.Metadata, "entity"),
		EntityID:  metadataString(log.Metadata, "entity_id"),
		Metadata:  log.Metadata,
		CreatedAt: log.CreatedAt,
	}
}

func AuditLogsToResponses(logs []entity.AuditLog) []dto.AuditLogResponse {
	responses := make([]dto.AuditLogResponse, 0, len(logs))
	for i := range logs {
		responses = append(responses, *AuditLogToResponse(&logs[i]))
	}
	return responses
}

// metadataString returns the string stored under key, or "" when the key is
// missing or holds another type.
func metadataString(metadata entity.JSON, key string) string {
	s, _ := metadata[key].(string)
	return s
}
