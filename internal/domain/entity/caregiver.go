package entity

import "github.com/google/uuid"

// Caregiver holds caregiver-specific profile data.
type Caregiver struct {
	UserID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	FullName          string    `gorm:"type:varchar(255);not null" json:"full_name"`
	ContactNumber     string    `gorm:"type:varchar(20)" json:"contact_number,omitempty"`
	NIC               string    `gorm:"type:varchar(12);uniqueIndex;not null" json:"nic"`
	ShiftAvailability string    `gorm:"type:varchar(50)" json:"shift_availability,omitempty"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Caregiver) TableName() string {
	return "caregivers"
}
