package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationModel is the GORM-specific struct for the append-only 'locations' table.
type LocationModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	PatientID  uuid.UUID `gorm:"type:uuid;not null;index:idx_locations_patient_recorded,priority:1"`
	Lat        float64   `gorm:"type:double precision;not null"`
	Lng        float64   `gorm:"type:double precision;not null"`
	RecordedAt time.Time `gorm:"not null;default:now();index:idx_locations_patient_recorded,priority:2,sort:desc"`

	Patient *ProfileModel `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}

// All lists every persistence model, in dependency order for migrations and code generation.
func All() []any {
	return []any{
		&ProfileModel{},
		&ConnectionModel{},
		&AlertModel{},
		&LocationModel{},
		&JournalModel{},
		&MedicationModel{},
		&TaskModel{},
		&FaceModel{},
		&EmergencyContactModel{},
	}
}
