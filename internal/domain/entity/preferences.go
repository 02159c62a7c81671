package entity

// UserPreferences is a conceptual singleton: the repository creates the
// row with defaults on first read and every update targets that same row.
type UserPreferences struct {
	ID                 int      `gorm:"primaryKey"`
	TargetCompanies    []string `gorm:"serializer:json"`
	TargetRoles        []string `gorm:"serializer:json"`
	EmailNotifications bool     `gorm:"not null;default:true"`
}
