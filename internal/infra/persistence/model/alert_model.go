package model

import (
	"time"

	"github.com/google/uuid"
)

// AlertModel is the GORM-specific struct for the 'alerts' table.
type AlertModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	PatientID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CaretakerID uuid.UUID `gorm:"type:uuid;not null;index:idx_alerts_caretaker_created,priority:1"`
	Type        string    `gorm:"type:varchar(32);not null"`
	Message     string    `gorm:"type:text;not null"`
	Resolved    bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"index:idx_alerts_caretaker_created,priority:2,sort:desc"`

	Patient *ProfileModel `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (AlertModel) TableName() string {
	return "alerts"
}
