package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient is a dependent record owned by exactly one family member.
// It has no identity of its own and cannot log in.
type Patient struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FamilyMemberID uuid.UUID `gorm:"type:uuid;not null;index" json:"family_member_id"`
	FullName       string    `gorm:"type:varchar(255);not null" json:"full_name"`
	DateOfBirth    time.Time `gorm:"type:date;not null" json:"date_of_birth"`
	Gender         string    `gorm:"type:char(1);not null" json:"gender"`
	MedicalNotes   string    `gorm:"type:text" json:"medical_notes,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	FamilyMember FamilyMember `gorm:"foreignKey:FamilyMemberID" json:"family_member,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// Gender constants
const (
	GenderMale   = "M"
	GenderFemale = "F"
)
