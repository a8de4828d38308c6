package models

import "time"

// Task is a sub-item of a quest. UserID mirrors the owning quest's
// user id so ownership checks need no join; it is derived from the
// parent quest at create time, never taken from the client.
type Task struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	QuestID      uint       `json:"quest_id" gorm:"index;not null"`
	UserID       uint       `json:"user_id" gorm:"index;not null"`
	TaskName     string     `json:"task_name" gorm:"not null;type:varchar(255)"`
	TaskDesc     string     `json:"task_desc" gorm:"not null"`
	Completed    bool       `json:"completed" gorm:"not null;default:false"`
	DateCreated  time.Time  `json:"date_created" gorm:"autoCreateTime"`
	DateModified *time.Time `json:"date_modified"`
}
