package models

type UserRole string

const (
	RoleApplicant UserRole = "Applicant"
	RoleAdmin     UserRole = "Admin"
)

type User struct {
	ID              uint     `gorm:"column:id;primaryKey" json:"id"`
	Name            string   `gorm:"column:name;type:text" json:"name"`
	Email           string   `gorm:"column:email;type:text;uniqueIndex" json:"email"`
	PasswordHash    string   `gorm:"column:password_hash;type:text" json:"-"`
	Address         string   `gorm:"column:address;type:text" json:"address"`
	Role            UserRole `gorm:"column:role;type:text" json:"role"`
	ProfileHeadline string   `gorm:"column:profile_headline;type:text" json:"profile_headline"`

	// Present only for applicants; cascade-created at signup.
	Profile *Profile `gorm:"foreignKey:UserID" json:"profile,omitempty"`
}

func (User) TableName() string { return "users" }
