package model

import (
	"time"

	"github.com/google/uuid"
)

// MedicationModel is the GORM-specific struct for the 'medications' table.
// Time holds the dose time as entered by the patient, e.g. "08:00".
type MedicationModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	PatientID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:varchar(200);not null"`
	Dosage       string    `gorm:"type:varchar(100);not null"`
	Time         string    `gorm:"column:time;type:varchar(32);not null"`
	Instructions *string   `gorm:"type:text"`
	Taken        bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Patient *ProfileModel `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (MedicationModel) TableName() string {
	return "medications"
}
