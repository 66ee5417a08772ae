package model

import (
	"time"

	"github.com/google/uuid"
)

// EmergencyContactModel is the GORM-specific struct for the 'emergency_contacts' table.
type EmergencyContactModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	PatientID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Phone        string    `gorm:"type:varchar(32);not null"`
	Relationship *string   `gorm:"type:varchar(64)"`
	CreatedAt    time.Time

	Patient *ProfileModel `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (EmergencyContactModel) TableName() string {
	return "emergency_contacts"
}
