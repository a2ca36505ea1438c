package model

import (
	"time"
)

// Priority is the classifier-derived urgency label of a task.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// ParsePriority maps a classifier label onto the fixed enumeration.
func ParsePriority(label string) (Priority, bool) {
	switch Priority(label) {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return Priority(label), true
	}
	return "", false
}

type Task struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:100;not null"`
	Description string
	DueDate     *time.Time `gorm:"type:date"`
	Priority    Priority   `gorm:"size:10"`
	CreatedAt   time.Time
}
