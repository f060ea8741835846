package models

import "gorm.io/gorm"

// Role is a named role optionally attached to a user. No workflow assigns
// roles yet; the table exists as an extension point.
type Role struct {
	gorm.Model
	Name   string `gorm:"size:80;unique;not null"`
	UserID *uint
	User   *User `gorm:"foreignKey:UserID"`
}
