package models

import "github.com/google/uuid"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	default:
		return false
	}
}

// Task stores completion twice: Status is canonical, Completed is the legacy
// boolean older clients still read. SyncCompletion must run on every write
// path that touches either field.
type Task struct {
	BaseModel
	Title     string     `json:"title" gorm:"type:varchar(255);not null"`
	Status    TaskStatus `json:"status" gorm:"type:varchar(20);not null;default:'todo';index"`
	Completed bool       `json:"completed" gorm:"not null;default:false"`
	OwnerID   uuid.UUID  `json:"owner_id" gorm:"type:uuid;not null;index"`

	Owner User `json:"-" gorm:"foreignKey:OwnerID;references:ID"`
}

func (t *Task) SyncCompletion() {
	t.Completed = t.Status == TaskStatusDone
}
