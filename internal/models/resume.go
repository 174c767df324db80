package models

type Resume struct {
	BaseModel
	CandidateID string `gorm:"not null;index"`
	Title       string `gorm:"not null"`
	FilePath    string `gorm:"not null"` // storage key, e.g. resumes/<uuid>.pdf
	FileURL     string
	IsActive    bool `gorm:"default:true"`

	Candidate *User `gorm:"foreignKey:CandidateID"`
}
