package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type User struct {
	ID             uuid.UUID                   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Email          string                      `gorm:"type:text;not null;uniqueIndex" json:"email"`
	Name           string                      `gorm:"type:text;not null" json:"name"`
	Role           Role                        `gorm:"type:text;not null" json:"role"`
	HashedPassword string                      `gorm:"type:text" json:"-"`
	GoogleID       *string                     `gorm:"type:text" json:"google_id,omitempty"`
	Courses        datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"courses"`
	CreatedAt      time.Time                   `gorm:"autoCreateTime" json:"created_at"`

	EncryptedGoogleAccessToken  string `gorm:"type:text" json:"-"`
	EncryptedGoogleRefreshToken string `gorm:"type:text" json:"-"`
}
