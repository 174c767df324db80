package models

// UserProfile extends User with the role and employer/contact fields.
// Exactly one profile per user; the role never changes after registration.
type UserProfile struct {
	BaseModel
	UserID      string `gorm:"uniqueIndex;not null"`
	Role        Role   `gorm:"type:varchar(20);not null"`
	CompanyName string // employers only
	PhoneNumber string
	Address     string

	User *User `gorm:"foreignKey:UserID"`
}
