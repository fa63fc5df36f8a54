package mocks

import (
	"context"
	"errors"
	"time"

	kdb "github.com/psmphuket/portal/pkg/db"
)

type InviteInterface struct {
	Impl struct {
		Find       func(context.Context, kdb.InviteFindQuery) ([]kdb.OwnerInvite, int64, error)
		Get        func(context.Context, string) (*kdb.OwnerInvite, error)
		Register   func(context.Context, *kdb.OwnerInvite) error
		Deactivate func(context.Context, string) error
		Redeem     func(context.Context, string, time.Time) (*kdb.OwnerInvite, error)
	}
	Calls struct {
		Find       CallLog[kdb.InviteFindQuery]
		Get        CallLog[string]
		Register   CallLog[kdb.OwnerInvite]
		Deactivate CallLog[string]
		Redeem     CallLog[struct {
			Code string
			Now  time.Time
		}]
	}
}

func NewInviteInterface() *InviteInterface {
	return &InviteInterface{}
}

var _ kdb.InviteInterface = &InviteInterface{}

func (m *InviteInterface) Find(ctx context.Context, q kdb.InviteFindQuery) ([]kdb.OwnerInvite, int64, error) {
	m.Calls.Find = append(m.Calls.Find, q)
	if m.Impl.Find != nil {
		return m.Impl.Find(ctx, q)
	}
	panic(errors.New("InviteInterface.Find should not be called"))
}

func (m *InviteInterface) Get(ctx context.Context, id string) (*kdb.OwnerInvite, error) {
	m.Calls.Get = append(m.Calls.Get, id)
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, id)
	}
	panic(errors.New("InviteInterface.Get should not be called"))
}

func (m *InviteInterface) Register(ctx context.Context, invite *kdb.OwnerInvite) error {
	m.Calls.Register = append(m.Calls.Register, *invite)
	if m.Impl.Register != nil {
		return m.Impl.Register(ctx, invite)
	}
	panic(errors.New("InviteInterface.Register should not be called"))
}

func (m *InviteInterface) Deactivate(ctx context.Context, id string) error {
	m.Calls.Deactivate = append(m.Calls.Deactivate, id)
	if m.Impl.Deactivate != nil {
		return m.Impl.Deactivate(ctx, id)
	}
	panic(errors.New("InviteInterface.Deactivate should not be called"))
}

func (m *InviteInterface) Redeem(ctx context.Context, code string, now time.Time) (*kdb.OwnerInvite, error) {
	m.Calls.Redeem = append(m.Calls.Redeem, struct {
		Code string
		Now  time.Time
	}{Code: code, Now: now})
	if m.Impl.Redeem != nil {
		return m.Impl.Redeem(ctx, code, now)
	}
	panic(errors.New("InviteInterface.Redeem should not be called"))
}
