package dto

import (
	"time"

	"github.com/google/uuid"
)

// Response DTOs

type AuditLogResponse struct {
	ID        uuid.UUID   `json:"id"`
	Action    string      `json:"accion"`
	Entity    string      `json:"entidad"`
	EntityID  string      `json:"id_entidad"`
	OldValue  interface{} `json:"valor_anterior,omitempty"`
	NewValue  interface{} `json:"valor_nuevo,omitempty"`
	CreatedAt time.Time   `json:"fecha"`
}

type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"registros"`
	Total int                `json:"total"`
}
