package gorm

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	kdb "github.com/psmphuket/portal/pkg/db"
)

type taskPG struct {
	conn *gorm.DB
}

var _ kdb.TaskInterface = &taskPG{}

func (t *taskPG) Find(ctx context.Context, q kdb.TaskFindQuery) ([]kdb.Task, int64, error) {
	tx := t.conn.WithContext(ctx).Model(&kdb.Task{})

	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if q.Priority != "" {
		tx = tx.Where("priority = ?", q.Priority)
	}
	if q.AssigneeID != "" {
		tx = tx.Where("assignee_id = ?", q.AssigneeID)
	}
	if q.PropertyID != "" {
		tx = tx.Where("property_id = ?", q.PropertyID)
	}
	if q.DueBefore != nil {
		tx = tx.Where("due_at < ?", *q.DueBefore)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var tasks []kdb.Task
	err := paginate(tx, q.Page, q.PerPage).
		Preload("Property").
		Order("due_at ASC, created_at DESC").
		Find(&tasks).Error
	if err != nil {
		return nil, 0, translate(err)
	}
	return tasks, total, nil
}

func (t *taskPG) Get(ctx context.Context, id string) (*kdb.Task, error) {
	var task kdb.Task
	err := t.conn.WithContext(ctx).
		Preload("Property").
		Where("id = ?", id).
		First(&task).Error
	if err != nil {
		return nil, translate(err)
	}
	return &task, nil
}

func (t *taskPG) Register(ctx context.Context, task *kdb.Task) error {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	if task.Status == "" {
		task.Status = kdb.TaskOpen
	}
	if task.Type == "" {
		task.Type = kdb.TaskOther
	}
	if task.Priority == "" {
		task.Priority = kdb.PriorityMedium
	}
	return translate(t.conn.WithContext(ctx).Omit("Property").Create(task).Error)
}

func (t *taskPG) Update(ctx context.Context, task *kdb.Task) error {
	result := t.conn.WithContext(ctx).
		Model(&kdb.Task{}).
		Where("id = ?", task.ID).
		Select(
			"Title", "Type", "Priority", "Note",
			"DueAt", "RemindAt", "AssigneeID", "PropertyID",
		).
		Updates(task)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return kdb.ErrMissing
	}
	return nil
}

func (t *taskPG) SetStatus(ctx context.Context, id string, status kdb.TaskStatus) (*kdb.Task, error) {
	// CompletedAt tracks the status: set entering COMPLETED, cleared leaving it.
	updates := map[string]any{"status": status}
	if status == kdb.TaskCompleted {
		now := time.Now()
		updates["completed_at"] = &now
	} else {
		updates["completed_at"] = nil
	}

	result := t.conn.WithContext(ctx).
		Model(&kdb.Task{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, kdb.ErrMissing
	}
	return t.Get(ctx, id)
}

func (t *taskPG) Delete(ctx context.Context, id string) error {
	result := t.conn.WithContext(ctx).Delete(&kdb.Task{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return kdb.ErrMissing
	}
	return nil
}

func (t *taskPG) BulkDelete(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := t.conn.WithContext(ctx).Delete(&kdb.Task{}, "id IN ?", ids)
	if result.Error != nil {
		return 0, translate(result.Error)
	}
	return result.RowsAffected, nil
}
