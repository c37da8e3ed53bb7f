package repository

import "gorm.io/gorm"

// nextReadableID draws the next value from a dedicated Postgres sequence,
// giving each table its own gap-free-enough human-readable counter.
func nextReadableID(db *gorm.DB, sequence string) (int64, error) {
	var id int64
	err := db.Raw("SELECT nextval(?)", sequence).Scan(&id).Error
	return id, err
}
