package model

import "time"

// PackageModel mirrors the 'packages' table.
type PackageModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Address   string `gorm:"type:varchar(255);not null"`
	Owner     string `gorm:"type:varchar(100);not null"`
	Weight    int    `gorm:"not null"`
	Status    string `gorm:"type:varchar(16);not null;default:pending"`
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PackageModel) TableName() string {
	return "packages"
}
