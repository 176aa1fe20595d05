package scope

import "gorm.io/gorm"

func OrderByUpdatedDesc(db *gorm.DB) *gorm.DB {
	return db.Order("updated_at DESC")
}

func OrderByTimestampAsc(db *gorm.DB) *gorm.DB {
	return db.Order("timestamp ASC")
}

func OrderByName(db *gorm.DB) *gorm.DB {
	return db.Order("name ASC")
}
