package models

// Application links a Job to an Applicant. Read-only in the current API:
// job reads join through it, but no endpoint creates one yet.
type Application struct {
	ID          uint `gorm:"column:id;primaryKey" json:"id"`
	JobID       uint `gorm:"column:job_id;index" json:"job_id"`
	ApplicantID uint `gorm:"column:applicant_id;index" json:"applicant_id"`

	Applicant *User `gorm:"foreignKey:ApplicantID" json:"applicant,omitempty"`
}

func (Application) TableName() string { return "applications" }
