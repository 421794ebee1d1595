package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the centralized identity table. IsActive is the single source
// of truth for whether an account is usable; role profiles never carry
// their own active flag.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	Role      Role      `gorm:"type:varchar(20);not null;index" json:"role"`
	IsActive  *bool     `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	FamilyMember *FamilyMember `gorm:"foreignKey:UserID" json:"family_member,omitempty"`
	Doctor       *Doctor       `gorm:"foreignKey:UserID" json:"doctor,omitempty"`
	Caregiver    *Caregiver    `gorm:"foreignKey:UserID" json:"caregiver,omitempty"`
}

func (User) TableName() string {
	return "users"
}
