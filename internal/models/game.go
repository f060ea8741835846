package models

import "gorm.io/gorm"

// Game represents one season of the elimination contest.
type Game struct {
	gorm.Model
	Name string `gorm:"size:80;unique;not null"`

	// Players is the roster, inverse of User.Seasons. The user_game join
	// table keys on (user_id, game_id), so joining twice is a no-op.
	Players []*User `gorm:"many2many:user_game;"`
}
