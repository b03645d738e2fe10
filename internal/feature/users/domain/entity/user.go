// Package entity defines the domain entities for the users feature.
package entity

// User represents one account stored in the users table.
type User struct {
	// ID is assigned by the store and never reused.
	ID uint `gorm:"primaryKey;autoIncrement"`

	// Name is the display name. It is not unique.
	Name string `gorm:"not null"`

	// Email is stored trimmed and lowercased.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;not null"`

	// Password is the bcrypt hash of the user's password.
	// This should never store plaintext passwords.
	Password string `gorm:"not null"`
}

// TableName returns the table name for GORM.
func (User) TableName() string {
	return "users"
}
