package entity

// Note is a timestamped record of a meeting with a contact.
//
// ContactID is an application-level reference, not a database foreign key:
// notes can be drafted from processed documents before the contact row
// exists, so the service layer owns the integrity check.
type Note struct {
	ID          int    `gorm:"primaryKey"`
	ContactID   int    `gorm:"not null;index"`
	Content     string `gorm:"not null"`
	MeetingDate int64  `gorm:"not null"`
	DocumentURL string
	Title       string
	Summary     string
	CreatedAt   int64 `gorm:"not null"`
	UpdatedAt   int64 `gorm:"not null;autoUpdateTime:false"`
}
