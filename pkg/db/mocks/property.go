package mocks

import (
	"context"
	"errors"

	kdb "github.com/psmphuket/portal/pkg/db"
)

type PropertyInterface struct {
	Impl struct {
		Find      func(context.Context, kdb.PropertyFindQuery) ([]kdb.Property, int64, error)
		GetBySlug func(context.Context, string) (*kdb.Property, error)
		Get       func(context.Context, string) (*kdb.Property, error)
		Register  func(context.Context, *kdb.Property) error
		Update    func(context.Context, *kdb.Property) error
		SetStatus func(context.Context, string, kdb.PropertyStatus) (*kdb.Property, error)
		Delete    func(context.Context, string) error
	}
	Calls struct {
		Find      CallLog[kdb.PropertyFindQuery]
		GetBySlug CallLog[string]
		Get       CallLog[string]
		Register  CallLog[kdb.Property]
		Update    CallLog[kdb.Property]
		SetStatus CallLog[struct {
			ID     string
			Status kdb.PropertyStatus
		}]
		Delete CallLog[string]
	}
}

func NewPropertyInterface() *PropertyInterface {
	return &PropertyInterface{}
}

var _ kdb.PropertyInterface = &PropertyInterface{}

func (m *PropertyInterface) Find(ctx context.Context, q kdb.PropertyFindQuery) ([]kdb.Property, int64, error) {
	m.Calls.Find = append(m.Calls.Find, q)
	if m.Impl.Find != nil {
		return m.Impl.Find(ctx, q)
	}
	panic(errors.New("PropertyInterface.Find should not be called"))
}

func (m *PropertyInterface) GetBySlug(ctx context.Context, slug string) (*kdb.Property, error) {
	m.Calls.GetBySlug = append(m.Calls.GetBySlug, slug)
	if m.Impl.GetBySlug != nil {
		return m.Impl.GetBySlug(ctx, slug)
	}
	panic(errors.New("PropertyInterface.GetBySlug should not be called"))
}

func (m *PropertyInterface) Get(ctx context.Context, id string) (*kdb.Property, error) {
	m.Calls.Get = append(m.Calls.Get, id)
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, id)
	}
	panic(errors.New("PropertyInterface.Get should not be called"))
}

func (m *PropertyInterface) Register(ctx context.Context, prop *kdb.Property) error {
	m.Calls.Register = append(m.Calls.Register, *prop)
	if m.Impl.Register != nil {
		return m.Impl.Register(ctx, prop)
	}
	panic(errors.New("PropertyInterface.Register should not be called"))
}

func (m *PropertyInterface) Update(ctx context.Context, prop *kdb.Property) error {
	m.Calls.Update = append(m.Calls.Update, *prop)
	if m.Impl.Update != nil {
		return m.Impl.Update(ctx, prop)
	}
	panic(errors.New("PropertyInterface.Update should not be called"))
}

func (m *PropertyInterface) SetStatus(ctx context.Context, id string, status kdb.PropertyStatus) (*kdb.Property, error) {
	m.Calls.SetStatus = append(m.Calls.SetStatus, struct {
		ID     string
		Status kdb.PropertyStatus
	}{ID: id, Status: status})
	if m.Impl.SetStatus != nil {
		return m.Impl.SetStatus(ctx, id, status)
	}
	panic(errors.New("PropertyInterface.SetStatus should not be called"))
}

func (m *PropertyInterface) Delete(ctx context.Context, id string) error {
	m.Calls.Delete = append(m.Calls.Delete, id)
	if m.Impl.Delete != nil {
		return m.Impl.Delete(ctx, id)
	}
	panic(errors.New("PropertyInterface.Delete should not be called"))
}
