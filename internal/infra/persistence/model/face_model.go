package model

import (
	"time"

	"github.com/google/uuid"
)

// FaceModel is the GORM-specific struct for the 'faces' table, the patient's
// gallery of familiar people.
type FaceModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	PatientID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Relationship string    `gorm:"type:varchar(64);not null"`
	ImageURL     string    `gorm:"type:text;not null"`
	CreatedAt    time.Time

	Patient *ProfileModel `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (FaceModel) TableName() string {
	return "faces"
}
