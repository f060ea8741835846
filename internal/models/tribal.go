package models

import "gorm.io/gorm"

// Tribal is a standalone tribe record. User.TribeName does not reference it;
// tribe membership on users is a plain string label.
type Tribal struct {
	gorm.Model
	TribeName string `gorm:"column:tribal_tribe_name;size:80;unique;not null"`
}

// TableName keeps the original singular table name.
func (Tribal) TableName() string {
	return "tribal"
}
