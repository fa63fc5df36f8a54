package mocks

import (
	"context"
	"errors"

	kdb "github.com/psmphuket/portal/pkg/db"
)

type TaskInterface struct {
	Impl struct {
		Find       func(context.Context, kdb.TaskFindQuery) ([]kdb.Task, int64, error)
		Get        func(context.Context, string) (*kdb.Task, error)
		Register   func(context.Context, *kdb.Task) error
		Update     func(context.Context, *kdb.Task) error
		SetStatus  func(context.Context, string, kdb.TaskStatus) (*kdb.Task, error)
		Delete     func(context.Context, string) error
		BulkDelete func(context.Context, []string) (int64, error)
	}
	Calls struct {
		Find      CallLog[kdb.TaskFindQuery]
		Get       CallLog[string]
		Register  CallLog[kdb.Task]
		Update    CallLog[kdb.Task]
		SetStatus CallLog[struct {
			ID     string
			Status kdb.TaskStatus
		}]
		Delete     CallLog[string]
		BulkDelete CallLog[[]string]
	}
}

func NewTaskInterface() *TaskInterface {
	return &TaskInterface{}
}

var _ kdb.TaskInterface = &TaskInterface{}

func (m *TaskInterface) Find(ctx context.Context, q kdb.TaskFindQuery) ([]kdb.Task, int64, error) {
	m.Calls.Find = append(m.Calls.Find, q)
	if m.Impl.Find != nil {
		return m.Impl.Find(ctx, q)
	}
	panic(errors.New("TaskInterface.Find should not be called"))
}

func (m *TaskInterface) Get(ctx context.Context, id string) (*kdb.Task, error) {
	m.Calls.Get = append(m.Calls.Get, id)
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, id)
	}
	panic(errors.New("TaskInterface.Get should not be called"))
}

func (m *TaskInterface) Register(ctx context.Context, task *kdb.Task) error {
	m.Calls.Register = append(m.Calls.Register, *task)
	if m.Impl.Register != nil {
		return m.Impl.Register(ctx, task)
	}
	panic(errors.New("TaskInterface.Register should not be called"))
}

func (m *TaskInterface) Update(ctx context.Context, task *kdb.Task) error {
	m.Calls.Update = append(m.Calls.Update, *task)
	if m.Impl.Update != nil {
		return m.Impl.Update(ctx, task)
	}
	panic(errors.New("TaskInterface.Update should not be called"))
}

func (m *TaskInterface) SetStatus(ctx context.Context, id string, status kdb.TaskStatus) (*kdb.Task, error) {
	m.Calls.SetStatus = append(m.Calls.SetStatus, struct {
		ID     string
		Status kdb.TaskStatus
	}{ID: id, Status: status})
	if m.Impl.SetStatus != nil {
		return m.Impl.SetStatus(ctx, id, status)
	}
	panic(errors.New("TaskInterface.SetStatus should not be called"))
}

func (m *TaskInterface) Delete(ctx context.Context, id string) error {
	m.Calls.Delete = append(m.Calls.Delete, id)
	if m.Impl.Delete != nil {
		return m.Impl.Delete(ctx, id)
	}
	panic(errors.New("TaskInterface.Delete should not be called"))
}

func (m *TaskInterface) BulkDelete(ctx context.Context, ids []string) (int64, error) {
	m.Calls.BulkDelete = append(m.Calls.BulkDelete, ids)
	if m.Impl.BulkDelete != nil {
		return m.Impl.BulkDelete(ctx, ids)
	}
	panic(errors.New("TaskInterface.BulkDelete should not be called"))
}
