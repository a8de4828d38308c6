package models

import "time"

// User represents a registered account. The password hash is never
// serialized; uniqueness of UserName is enforced by the database index.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserName     string    `json:"user_name" gorm:"uniqueIndex;not null;type:varchar(100)"`
	PasswordHash string    `json:"-" gorm:"not null;type:varchar(100)"`
	DateCreated  time.Time `json:"date_created" gorm:"autoCreateTime"`
}
