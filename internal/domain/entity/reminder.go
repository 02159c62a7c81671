package entity

type Reminder struct {
	ID          int    `gorm:"primaryKey"`
	ContactID   int    `gorm:"not null;index"`
	Description string `gorm:"not null"`
	DueDate     int64  `gorm:"not null"`
	Completed   bool   `gorm:"not null;default:false"`
	CreatedAt   int64  `gorm:"not null"`
	UpdatedAt   int64  `gorm:"not null;autoUpdateTime:false"`
}
