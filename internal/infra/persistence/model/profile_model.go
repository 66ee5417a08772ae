package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel is the GORM-specific struct for the 'profiles' table.
// The primary key is the user ID issued by the identity provider.
type ProfileModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Role      string    `gorm:"type:varchar(16);not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Phone     *string   `gorm:"type:varchar(32)"`
	HomeLat   *float64  `gorm:"type:double precision"`
	HomeLng   *float64  `gorm:"type:double precision"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
