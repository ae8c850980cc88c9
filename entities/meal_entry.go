package entities

import (
	"time"
)

// MealEntry is one logged meal. Rows are immutable once written; the only
// mutations are whole-row deletions done by the reset and undo operations.
type MealEntry struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       int64     `gorm:"not null;index:idx_meal_entries_user_created,priority:1" json:"user_id"`
	UserName     string    `gorm:"size:255" json:"user_name"`
	Calories     int       `gorm:"not null" json:"calories"`
	MealAnalysis string    `gorm:"type:text" json:"meal_analysis"`
	PhotoURL     string    `json:"photo_url,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime;index:idx_meal_entries_user_created,priority:2" json:"created_at"`
}
