package entity

type Contact struct {
	ID          int    `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Company     string `gorm:"not null"` // Soft reference: companies(name)
	Role        string `gorm:"not null"`
	LinkedinURL string
	Email       string
	Phone       string
	Notes       string

	LastContactDate int64 `gorm:"not null"`
	NextContactDate int64 // 0 = not scheduled

	CreatedAt int64 `gorm:"not null"`
	UpdatedAt int64 `gorm:"not null;autoUpdateTime:false"`
}

// Tier buckets a contact by how well it aligns with the user's
// target companies and roles.
type Tier string

const (
	TierGold     Tier = "GOLD"
	TierSilver   Tier = "SILVER"
	TierStandard Tier = "STANDARD"
)
