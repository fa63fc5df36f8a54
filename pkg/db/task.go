package db

import (
	"context"
	"time"
)

type TaskStatus string

const (
	TaskOpen       TaskStatus = "OPEN"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskCompleted  TaskStatus = "COMPLETED"
	TaskCancelled  TaskStatus = "CANCELLED"
	TaskPostponed  TaskStatus = "POSTPONED"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskOpen, TaskInProgress, TaskCompleted, TaskCancelled, TaskPostponed:
		return true
	}
	return false
}

type TaskType string

const (
	TaskCall      TaskType = "CALL"
	TaskViewing   TaskType = "VIEWING"
	TaskFollowUp  TaskType = "FOLLOW_UP"
	TaskPaperwork TaskType = "PAPERWORK"
	TaskOther     TaskType = "OTHER"
)

func (t TaskType) Valid() bool {
	switch t {
	case TaskCall, TaskViewing, TaskFollowUp, TaskPaperwork, TaskOther:
		return true
	}
	return false
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "LOW"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityHigh   TaskPriority = "HIGH"
	PriorityUrgent TaskPriority = "URGENT"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type Task struct {
	ID          string       `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string       `json:"title" gorm:"not null"`
	Type        TaskType     `json:"type" gorm:"default:OTHER"`
	Priority    TaskPriority `json:"priority" gorm:"default:MEDIUM"`
	Status      TaskStatus   `json:"status" gorm:"index;default:OPEN"`
	Note        string       `json:"note"`
	DueAt       *time.Time   `json:"dueAt"`
	RemindAt    *time.Time   `json:"remindAt"`
	CompletedAt *time.Time   `json:"completedAt"`
	AssigneeID  *string      `json:"assigneeId" gorm:"type:uuid;index"`
	PropertyID  *string      `json:"propertyId" gorm:"type:uuid;index"`
	Property    *Property    `json:"property,omitempty" gorm:"constraint:OnDelete:SET NULL"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

type TaskFindQuery struct {
	Status     TaskStatus
	Priority   TaskPriority
	AssigneeID string
	PropertyID string
	DueBefore  *time.Time
	Page       int
	PerPage    int
}

type TaskInterface interface {
	Find(ctx context.Context, q TaskFindQuery) ([]Task, int64, error)
	Get(ctx context.Context, id string) (*Task, error)
	Register(ctx context.Context, task *Task) error
	Update(ctx context.Context, task *Task) error

	// SetStatus writes the status field. CompletedAt is set when status
	// becomes COMPLETED and cleared when it leaves COMPLETED.
	SetStatus(ctx context.Context, id string, status TaskStatus) (*Task, error)

	Delete(ctx context.Context, id string) error
	BulkDelete(ctx context.Context, ids []string) (int64, error)
}
