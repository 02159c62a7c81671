package entity

type Company struct {
	ID       int    `gorm:"primaryKey"`
	Name     string `gorm:"not null;uniqueIndex"`
	IsTarget bool   `gorm:"not null;default:false"`
}
