package specification

import "gorm.io/gorm"

// UserAuthoredOnly keeps only the turns typed by the user, dropping bot
// replies. The mental health analysis scores user text exclusively.
type UserAuthoredOnly struct{}

func (s UserAuthoredOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_from_user = ?", true)
}

// OrderBySeq returns turns in append order.
type OrderBySeq struct{}

func (s OrderBySeq) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("seq ASC")
}
