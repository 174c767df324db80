package models

type Application struct {
	BaseModel
	JobID         string            `gorm:"not null;index"`
	CandidateID   string            `gorm:"not null;index"`
	ResumeID      *string           `gorm:"index"` // nulled when the resume is deleted
	CoverLetter   string            `gorm:"type:text"`
	Status        ApplicationStatus `gorm:"type:varchar(20);default:'pending'"`
	EmployerNotes string            `gorm:"type:text"`

	Job       *Job    `gorm:"foreignKey:JobID"`
	Candidate *User   `gorm:"foreignKey:CandidateID"`
	Resume    *Resume `gorm:"foreignKey:ResumeID;constraint:OnDelete:SET NULL"`
}
