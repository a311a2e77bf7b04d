package models

type Admin struct {
	Email        string `gorm:"column:email;primaryKey;size:255"`
	Name         string `gorm:"column:name;size:255"`
	PasswordHash string `gorm:"column:password_hash;size:255"`
}

func (Admin) TableName() string {
	return "admins"
}
