package mocks

import (
	"context"
	"errors"

	kdb "github.com/psmphuket/portal/pkg/db"
)

type HeroInterface struct {
	Impl struct {
		Find     func(context.Context, kdb.HeroFindQuery) ([]kdb.HeroImage, error)
		Register func(context.Context, *kdb.HeroImage) error
		Update   func(context.Context, *kdb.HeroImage) error
		Delete   func(context.Context, string) error
	}
	Calls struct {
		Find     CallLog[kdb.HeroFindQuery]
		Register CallLog[kdb.HeroImage]
		Update   CallLog[kdb.HeroImage]
		Delete   CallLog[string]
	}
}

func NewHeroInterface() *HeroInterface {
	return &HeroInterface{}
}

var _ kdb.HeroInterface = &HeroInterface{}

func (m *HeroInterface) Find(ctx context.Context, q kdb.HeroFindQuery) ([]kdb.HeroImage, error) {
	m.Calls.Find = append(m.Calls.Find, q)
	if m.Impl.Find != nil {
		return m.Impl.Find(ctx, q)
	}
	panic(errors.New("HeroInterface.Find should not be called"))
}

func (m *HeroInterface) Register(ctx context.Context, img *kdb.HeroImage) error {
	m.Calls.Register = append(m.Calls.Register, *img)
	if m.Impl.Register != nil {
		return m.Impl.Register(ctx, img)
	}
	panic(errors.New("HeroInterface.Register should not be called"))
}

func (m *HeroInterface) Update(ctx context.Context, img *kdb.HeroImage) error {
	m.Calls.Update = append(m.Calls.Update, *img)
	if m.Impl.Update != nil {
		return m.Impl.Update(ctx, img)
	}
	panic(errors.New("HeroInterface.Update should not be called"))
}

func (m *HeroInterface) Delete(ctx context.Context, id string) error {
	m.Calls.Delete = append(m.Calls.Delete, id)
	if m.Impl.Delete != nil {
		return m.Impl.Delete(ctx, id)
	}
	panic(errors.New("HeroInterface.Delete should not be called"))
}

type CompanyInterface struct {
	Impl struct {
		Get    func(context.Context) (*kdb.CompanyProfile, error)
		Update func(context.Context, *kdb.CompanyProfile) (*kdb.CompanyProfile, error)
	}
	Calls struct {
		Get    CallLog[struct{}]
		Update CallLog[kdb.CompanyProfile]
	}
}

func NewCompanyInterface() *CompanyInterface {
	return &CompanyInterface{}
}

var _ kdb.CompanyInterface = &CompanyInterface{}

func (m *CompanyInterface) Get(ctx context.Context) (*kdb.CompanyProfile, error) {
	m.Calls.Get = append(m.Calls.Get, struct{}{})
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx)
	}
	panic(errors.New("CompanyInterface.Get should not be called"))
}

func (m *CompanyInterface) Update(ctx context.Context, profile *kdb.CompanyProfile) (*kdb.CompanyProfile, error) {
	m.Calls.Update = append(m.Calls.Update, *profile)
	if m.Impl.Update != nil {
		return m.Impl.Update(ctx, profile)
	}
	panic(errors.New("CompanyInterface.Update should not be called"))
}

type LinkInterface struct {
	Impl struct {
		Find     func(context.Context, kdb.LinkFindQuery) ([]kdb.InternalLink, error)
		Register func(context.Context, *kdb.InternalLink) error
		Update   func(context.Context, *kdb.InternalLink) error
		Delete   func(context.Context, string) error
	}
	Calls struct {
		Find     CallLog[kdb.LinkFindQuery]
		Register CallLog[kdb.InternalLink]
		Update   CallLog[kdb.InternalLink]
		Delete   CallLog[string]
	}
}

func NewLinkInterface() *LinkInterface {
	return &LinkInterface{}
}

var _ kdb.LinkInterface = &LinkInterface{}

func (m *LinkInterface) Find(ctx context.Context, q kdb.LinkFindQuery) ([]kdb.InternalLink, error) {
	m.Calls.Find = append(m.Calls.Find, q)
	if m.Impl.Find != nil {
		return m.Impl.Find(ctx, q)
	}
	panic(errors.New("LinkInterface.Find should not be called"))
}

func (m *LinkInterface) Register(ctx context.Context, link *kdb.InternalLink) error {
	m.Calls.Register = append(m.Calls.Register, *link)
	if m.Impl.Register != nil {
		return m.Impl.Register(ctx, link)
	}
	panic(errors.New("LinkInterface.Register should not be called"))
}

func (m *LinkInterface) Update(ctx context.Context, link *kdb.InternalLink) error {
	m.Calls.Update = append(m.Calls.Update, *link)
	if m.Impl.Update != nil {
		return m.Impl.Update(ctx, link)
	}
	panic(errors.New("LinkInterface.Update should not be called"))
}

func (m *LinkInterface) Delete(ctx context.Context, id string) error {
	m.Calls.Delete = append(m.Calls.Delete, id)
	if m.Impl.Delete != nil {
		return m.Impl.Delete(ctx, id)
	}
	panic(errors.New("LinkInterface.Delete should not be called"))
}

type UserInterface struct {
	Impl struct {
		Find       func(context.Context, kdb.UserFindQuery) ([]kdb.User, error)
		Get        func(context.Context, string) (*kdb.User, error)
		GetByEmail func(context.Context, string) (*kdb.User, error)
		Register   func(context.Context, *kdb.User) error
		Update     func(context.Context, *kdb.User) error
		Delete     func(context.Context, string) error
	}
	Calls struct {
		Find       CallLog[kdb.UserFindQuery]
		Get        CallLog[string]
		GetByEmail CallLog[string]
		Register   CallLog[kdb.User]
		Update     CallLog[kdb.User]
		Delete     CallLog[string]
	}
}

func NewUserInterface() *UserInterface {
	return &UserInterface{}
}

var _ kdb.UserInterface = &UserInterface{}

func (m *UserInterface) Find(ctx context.Context, q kdb.UserFindQuery) ([]kdb.User, error) {
	m.Calls.Find = append(m.Calls.Find, q)
	if m.Impl.Find != nil {
		return m.Impl.Find(ctx, q)
	}
	panic(errors.New("UserInterface.Find should not be called"))
}

func (m *UserInterface) Get(ctx context.Context, id string) (*kdb.User, error) {
	m.Calls.Get = append(m.Calls.Get, id)
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, id)
	}
	panic(errors.New("UserInterface.Get should not be called"))
}

func (m *UserInterface) GetByEmail(ctx context.Context, email string) (*kdb.User, error) {
	m.Calls.GetByEmail = append(m.Calls.GetByEmail, email)
	if m.Impl.GetByEmail != nil {
		return m.Impl.GetByEmail(ctx, email)
	}
	panic(errors.New("UserInterface.GetByEmail should not be called"))
}

func (m *UserInterface) Register(ctx context.Context, user *kdb.User) error {
	m.Calls.Register = append(m.Calls.Register, *user)
	if m.Impl.Register != nil {
		return m.Impl.Register(ctx, user)
	}
	panic(errors.New("UserInterface.Register should not be called"))
}

func (m *UserInterface) Update(ctx context.Context, user *kdb.User) error {
	m.Calls.Update = append(m.Calls.Update, *user)
	if m.Impl.Update != nil {
		return m.Impl.Update(ctx, user)
	}
	panic(errors.New("UserInterface.Update should not be called"))
}

func (m *UserInterface) Delete(ctx context.Context, id string) error {
	m.Calls.Delete = append(m.Calls.Delete, id)
	if m.Impl.Delete != nil {
		return m.Impl.Delete(ctx, id)
	}
	panic(errors.New("UserInterface.Delete should not be called"))
}
