package entity

import "github.com/google/uuid"

// FamilyMember holds family-account profile data and owns the family's
// patient records.
type FamilyMember struct {
	UserID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	FullName      string    `gorm:"type:varchar(255);not null" json:"full_name"`
	ContactNumber string    `gorm:"type:varchar(20);not null" json:"contact_number"`
	Address       string    `gorm:"type:text" json:"address,omitempty"`

	// Relationships
	User     User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Patients []Patient `gorm:"foreignKey:FamilyMemberID" json:"patients,omitempty"`
}

func (FamilyMember) TableName() string {
	return "family_members"
}
