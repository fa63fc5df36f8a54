package mocks

import (
	"context"
	"errors"

	kdb "github.com/psmphuket/portal/pkg/db"
)

type BlogInterface struct {
	Impl struct {
		Find      func(context.Context, kdb.BlogFindQuery) ([]kdb.BlogPost, int64, error)
		GetBySlug func(context.Context, string) (*kdb.BlogPost, error)
		Get       func(context.Context, string) (*kdb.BlogPost, error)
		Register  func(context.Context, *kdb.BlogPost) error
		Update    func(context.Context, *kdb.BlogPost) error
		Delete    func(context.Context, string) error
	}
	Calls struct {
		Find      CallLog[kdb.BlogFindQuery]
		GetBySlug CallLog[string]
		Get       CallLog[string]
		Register  CallLog[kdb.BlogPost]
		Update    CallLog[kdb.BlogPost]
		Delete    CallLog[string]
	}
}

func NewBlogInterface() *BlogInterface {
	return &BlogInterface{}
}

var _ kdb.BlogInterface = &BlogInterface{}

func (m *BlogInterface) Find(ctx context.Context, q kdb.BlogFindQuery) ([]kdb.BlogPost, int64, error) {
	m.Calls.Find = append(m.Calls.Find, q)
	if m.Impl.Find != nil {
		return m.Impl.Find(ctx, q)
	}
	panic(errors.New("BlogInterface.Find should not be called"))
}

func (m *BlogInterface) GetBySlug(ctx context.Context, slug string) (*kdb.BlogPost, error) {
	m.Calls.GetBySlug = append(m.Calls.GetBySlug, slug)
	if m.Impl.GetBySlug != nil {
		return m.Impl.GetBySlug(ctx, slug)
	}
	panic(errors.New("BlogInterface.GetBySlug should not be called"))
}

func (m *BlogInterface) Get(ctx context.Context, id string) (*kdb.BlogPost, error) {
	m.Calls.Get = append(m.Calls.Get, id)
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, id)
	}
	panic(errors.New("BlogInterface.Get should not be called"))
}

func (m *BlogInterface) Register(ctx context.Context, post *kdb.BlogPost) error {
	m.Calls.Register = append(m.Calls.Register, *post)
	if m.Impl.Register != nil {
		return m.Impl.Register(ctx, post)
	}
	panic(errors.New("BlogInterface.Register should not be called"))
}

func (m *BlogInterface) Update(ctx context.Context, post *kdb.BlogPost) error {
	m.Calls.Update = append(m.Calls.Update, *post)
	if m.Impl.Update != nil {
		return m.Impl.Update(ctx, post)
	}
	panic(errors.New("BlogInterface.Update should not be called"))
}

func (m *BlogInterface) Delete(ctx context.Context, id string) error {
	m.Calls.Delete = append(m.Calls.Delete, id)
	if m.Impl.Delete != nil {
		return m.Impl.Delete(ctx, id)
	}
	panic(errors.New("BlogInterface.Delete should not be called"))
}
