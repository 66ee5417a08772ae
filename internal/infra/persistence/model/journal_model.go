package model

import (
	"time"

	"github.com/google/uuid"
)

// JournalModel is the GORM-specific struct for the 'journals' table.
type JournalModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	PatientID uuid.UUID `gorm:"type:uuid;not null;index:idx_journals_patient_created,priority:1"`
	Content   string    `gorm:"type:text;not null"`
	Mood      *string   `gorm:"type:varchar(32)"`
	CreatedAt time.Time `gorm:"index:idx_journals_patient_created,priority:2,sort:desc"`
	UpdatedAt time.Time

	Patient *ProfileModel `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (JournalModel) TableName() string {
	return "journals"
}
