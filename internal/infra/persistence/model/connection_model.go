package model

import (
	"time"

	"github.com/google/uuid"
)

// ConnectionModel is the GORM-specific struct for the 'connections' table.
// A caretaker and a patient are linked by at most one row.
type ConnectionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CaretakerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_connections_pair,priority:1"`
	PatientID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_connections_pair,priority:2;index"`
	Status      string    `gorm:"type:varchar(16);not null;default:PENDING;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Caretaker *ProfileModel `gorm:"foreignKey:CaretakerID;constraint:OnDelete:CASCADE"`
	Patient   *ProfileModel `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ConnectionModel) TableName() string {
	return "connections"
}
