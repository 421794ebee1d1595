package entity

import "github.com/google/uuid"

// Doctor holds doctor-specific profile data.
type Doctor struct {
	UserID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	FullName       string    `gorm:"type:varchar(255);not null" json:"full_name"`
	ContactNumber  string    `gorm:"type:varchar(20)" json:"contact_number,omitempty"`
	Specialization string    `gorm:"type:varchar(100);not null;index" json:"specialization"`
	LicenseNumber  string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"license_number"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
