package models

type Profile struct {
	UserID            uint   `gorm:"column:user_id;primaryKey" json:"-"`
	ResumeFileAddress string `gorm:"column:resume_file_address;type:text" json:"resume_file_address"`
	Skills            string `gorm:"column:skills;type:text" json:"skills"`
	Education         string `gorm:"column:education;type:text" json:"education"`
	Experience        string `gorm:"column:experience;type:text" json:"experience"`
	Phone             string `gorm:"column:phone;type:text" json:"phone"`
}

func (Profile) TableName() string { return "profiles" }
