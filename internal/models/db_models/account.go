package db_models

type Account struct {
	BaseModel
	Username     string `gorm:"unique"`
	Email        string `gorm:"unique"`
	Bio          string
	PasswordHash string

	Trips         []Trip         `gorm:"foreignKey:UserID"`
	Notifications []Notification `gorm:"foreignKey:UserID"`
}
