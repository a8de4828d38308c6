package models

import "time"

// Quest is a top-level goal owned by exactly one user.
type Quest struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	UserID       uint       `json:"user_id" gorm:"index;not null"`
	QuestName    string     `json:"quest_name" gorm:"not null;type:varchar(255)"`
	QuestDesc    string     `json:"quest_desc" gorm:"not null"`
	Completed    bool       `json:"completed" gorm:"not null;default:false"`
	DateCreated  time.Time  `json:"date_created" gorm:"autoCreateTime"`
	DateModified *time.Time `json:"date_modified"`
}

// QuestSummary is the read model for quests: the quest row annotated
// with aggregate task counts computed by the store. The owner id is
// deliberately absent from the wire representation.
type QuestSummary struct {
	ID             uint       `json:"id"`
	QuestName      string     `json:"quest_name"`
	QuestDesc      string     `json:"quest_desc"`
	Completed      bool       `json:"completed"`
	DateCreated    time.Time  `json:"date_created"`
	DateModified   *time.Time `json:"date_modified"`
	TotalTasks     int64      `json:"total_tasks"`
	CompletedTasks int64      `json:"completed_tasks"`
}
