package models

import "time"

type User struct {
	BaseModel
	Username     string `gorm:"uniqueIndex;not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	FirstName    string
	LastName     string
	PasswordHash string `gorm:"not null"`

	// Relations
	Profile       *UserProfile   `gorm:"foreignKey:UserID"`
	Jobs          []Job          `gorm:"foreignKey:EmployerID"`
	Resumes       []Resume       `gorm:"foreignKey:CandidateID"`
	Applications  []Application  `gorm:"foreignKey:CandidateID"`
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID"`
}

// FullName returns "First Last", falling back to the username.
func (u *User) FullName() string {
	name := u.FirstName
	if u.LastName != "" {
		if name != "" {
			name += " "
		}
		name += u.LastName
	}
	if name == "" {
		return u.Username
	}
	return name
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}
