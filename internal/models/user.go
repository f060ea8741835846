package models

import "gorm.io/gorm"

// User represents a registered player (or game admin) in the system.
type User struct {
	gorm.Model
	Username string `gorm:"size:80;unique;not null"`
	Email    string `gorm:"size:80;unique;not null"`
	// PasswordHash is nil for pre-provisioned accounts that have no
	// password yet; such accounts cannot log in.
	PasswordHash *string `gorm:"size:255"`
	FirstName    string  `gorm:"size:30"`
	LastName     string  `gorm:"size:30"`
	FullName     string  `gorm:"size:60"`
	Active       bool    `gorm:"not null;default:false"`
	IsAdmin      bool    `gorm:"not null;default:false"`

	// Gameplay state. TribeName is a freeform label, not a relation.
	TribeName string `gorm:"size:30"`
	Fire      bool   `gorm:"not null;default:true"`
	Jury      bool   `gorm:"not null;default:false"`
	Tribal    bool   `gorm:"not null;default:false"`
	Votes     int    `gorm:"not null;default:0"`
	Round     int    `gorm:"not null;default:0"`

	// Seasons this user has played in.
	Seasons []*Game `gorm:"many2many:user_game;"`
}

// DisplayName derives the user's full name from the name parts. The stored
// FullName column is written from the same parts at registration and is
// never updated independently.
func (u *User) DisplayName() string {
	return u.FirstName + u.LastName
}
