package models

import "time"

type Job struct {
	BaseModel
	EmployerID   string    `gorm:"not null;index"`
	Title        string    `gorm:"not null"`
	Description  string    `gorm:"type:text"`
	Requirements string    `gorm:"type:text"`
	Location     string
	SalaryRange  string
	JobType      string // free text: Full-time, Part-time, Contract, ...
	Status       JobStatus `gorm:"type:varchar(20);default:'active'"`
	PostedDate   time.Time `gorm:"default:now()"`
	Deadline     *time.Time

	Employer     *User         `gorm:"foreignKey:EmployerID"`
	Applications []Application `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
}
