package models

import "time"

type Job struct {
	ID          uint      `gorm:"column:id;primaryKey" json:"id"`
	Title       string    `gorm:"column:title;type:text" json:"title"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	PostedOn    time.Time `gorm:"column:posted_on;type:timestamptz" json:"posted_on"`
	CompanyName string    `gorm:"column:company_name;type:text" json:"company_name"`

	// Running counter only; no apply endpoint increments it yet.
	TotalApplications int `gorm:"column:total_applications" json:"total_applications"`

	PostedByID uint  `gorm:"column:posted_by_id" json:"posted_by_id"`
	PostedBy   *User `gorm:"foreignKey:PostedByID" json:"posted_by,omitempty"`
}

func (Job) TableName() string { return "jobs" }
