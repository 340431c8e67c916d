package model

import "time"

// AccountModel mirrors the 'accounts' table.
// ResetPasswordToken is a pointer so that "no pending reset" maps to NULL and
// the unique index stays sparse.
type AccountModel struct {
	ID                 int64   `gorm:"primaryKey;autoIncrement"`
	Name               string  `gorm:"type:varchar(100);not null"`
	Surname            string  `gorm:"type:varchar(100);not null"`
	Email              string  `gorm:"type:varchar(255);unique;not null"`
	PasswordHash       string  `gorm:"type:text;not null"`
	Salt               string  `gorm:"type:varchar(64);not null"`
	IsAdmin            bool    `gorm:"not null;default:false"`
	ProfileImage       string  `gorm:"type:text"`
	ResetPasswordToken *string `gorm:"type:text;index"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
