package mocks

import (
	"context"
	"errors"

	kdb "github.com/psmphuket/portal/pkg/db"
)

type PricingInterface struct {
	Impl struct {
		Find     func(context.Context, kdb.PricingFindQuery) ([]kdb.PriceChangeRequest, int64, error)
		Get      func(context.Context, string) (*kdb.PriceChangeRequest, error)
		Register func(context.Context, *kdb.PriceChangeRequest, bool) error
		Approve  func(context.Context, string, string, string) (*kdb.PriceChangeRequest, error)
		Reject   func(context.Context, string, string, string) (*kdb.PriceChangeRequest, error)
		Cancel   func(context.Context, string) (*kdb.PriceChangeRequest, error)
	}
	Calls struct {
		Find     CallLog[kdb.PricingFindQuery]
		Get      CallLog[string]
		Register CallLog[struct {
			Request   kdb.PriceChangeRequest
			AutoApply bool
		}]
		Approve CallLog[struct {
			ID, ReviewerID, Note string
		}]
		Reject CallLog[struct {
			ID, ReviewerID, Note string
		}]
		Cancel CallLog[string]
	}
}

func NewPricingInterface() *PricingInterface {
	return &PricingInterface{}
}

var _ kdb.PricingInterface = &PricingInterface{}

func (m *PricingInterface) Find(ctx context.Context, q kdb.PricingFindQuery) ([]kdb.PriceChangeRequest, int64, error) {
	m.Calls.Find = append(m.Calls.Find, q)
	if m.Impl.Find != nil {
		return m.Impl.Find(ctx, q)
	}
	panic(errors.New("PricingInterface.Find should not be called"))
}

func (m *PricingInterface) Get(ctx context.Context, id string) (*kdb.PriceChangeRequest, error) {
	m.Calls.Get = append(m.Calls.Get, id)
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, id)
	}
	panic(errors.New("PricingInterface.Get should not be called"))
}

func (m *PricingInterface) Register(ctx context.Context, req *kdb.PriceChangeRequest, autoApply bool) error {
	m.Calls.Register = append(m.Calls.Register, struct {
		Request   kdb.PriceChangeRequest
		AutoApply bool
	}{Request: *req, AutoApply: autoApply})
	if m.Impl.Register != nil {
		return m.Impl.Register(ctx, req, autoApply)
	}
	panic(errors.New("PricingInterface.Register should not be called"))
}

func (m *PricingInterface) Approve(ctx context.Context, id, reviewerID, note string) (*kdb.PriceChangeRequest, error) {
	m.Calls.Approve = append(m.Calls.Approve, struct {
		ID, ReviewerID, Note string
	}{id, reviewerID, note})
	if m.Impl.Approve != nil {
		return m.Impl.Approve(ctx, id, reviewerID, note)
	}
	panic(errors.New("PricingInterface.Approve should not be called"))
}

func (m *PricingInterface) Reject(ctx context.Context, id, reviewerID, note string) (*kdb.PriceChangeRequest, error) {
	m.Calls.Reject = append(m.Calls.Reject, struct {
		ID, ReviewerID, Note string
	}{id, reviewerID, note})
	if m.Impl.Reject != nil {
		return m.Impl.Reject(ctx, id, reviewerID, note)
	}
	panic(errors.New("PricingInterface.Reject should not be called"))
}

func (m *PricingInterface) Cancel(ctx context.Context, id string) (*kdb.PriceChangeRequest, error) {
	m.Calls.Cancel = append(m.Calls.Cancel, id)
	if m.Impl.Cancel != nil {
		return m.Impl.Cancel(ctx, id)
	}
	panic(errors.New("PricingInterface.Cancel should not be called"))
}
