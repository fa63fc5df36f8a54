// Package gorm implements pkg/db repositories on gorm.io/gorm.
//
// Production opens postgres; tests open in-memory sqlite through the same
// constructor, so every repository method is exercised against a real
// database in both cases.
package gorm

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	kdb "github.com/psmphuket/portal/pkg/db"
)

type portalDB struct {
	conn    *gorm.DB
	blog    kdb.BlogInterface
	props   kdb.PropertyInterface
	tasks   kdb.TaskInterface
	pricing kdb.PricingInterface
	invites kdb.InviteInterface
	hero    kdb.HeroInterface
	company kdb.CompanyInterface
	links   kdb.LinkInterface
	users   kdb.UserInterface
}

// New connects to postgres at dburi and migrates the schema.
func New(ctx context.Context, dburi string) (kdb.Database, error) {
	conn, err := gorm.Open(postgres.Open(dburi), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}
	return Wrap(conn.WithContext(ctx))
}

// Wrap builds the repository set over an already opened gorm connection.
// Tests pass a sqlite connection here.
func Wrap(conn *gorm.DB) (kdb.Database, error) {
	if err := Migrate(conn); err != nil {
		return nil, err
	}
	return &portalDB{
		conn:    conn,
		blog:    &blogPG{conn},
		props:   &propertyPG{conn},
		tasks:   &taskPG{conn},
		pricing: &pricingPG{conn},
		invites: &invitePG{conn},
		hero:    &heroPG{conn},
		company: &companyPG{conn},
		links:   &linkPG{conn},
		users:   &userPG{conn},
	}, nil
}

// Migrate applies the schema for every entity.
func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&kdb.User{},
		&kdb.Property{},
		&kdb.BlogPost{},
		&kdb.Task{},
		&kdb.PriceChangeRequest{},
		&kdb.OwnerInvite{},
		&kdb.HeroImage{},
		&kdb.CompanyProfile{},
		&kdb.InternalLink{},
	)
}

func (p *portalDB) Blog() kdb.BlogInterface           { return p.blog }
func (p *portalDB) Properties() kdb.PropertyInterface { return p.props }
func (p *portalDB) Tasks() kdb.TaskInterface          { return p.tasks }
func (p *portalDB) Pricing() kdb.PricingInterface     { return p.pricing }
func (p *portalDB) Invites() kdb.InviteInterface      { return p.invites }
func (p *portalDB) Hero() kdb.HeroInterface           { return p.hero }
func (p *portalDB) Company() kdb.CompanyInterface     { return p.company }
func (p *portalDB) Links() kdb.LinkInterface          { return p.links }
func (p *portalDB) Users() kdb.UserInterface          { return p.users }

func (p *portalDB) Close() error {
	sqldb, err := p.conn.DB()
	if err != nil {
		return err
	}
	return sqldb.Close()
}

// translate maps driver errors to pkg/db sentinels.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return kdb.ErrMissing
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return kdb.ErrConflict
	}
	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) && pgerr.Code == pgerrcode.UniqueViolation {
		return kdb.ErrConflict
	}
	return err
}

// paginate normalizes 1-origin page numbers into offset/limit.
func paginate(tx *gorm.DB, page, perPage int) *gorm.DB {
	if perPage <= 0 {
		perPage = 20
	}
	if page <= 0 {
		page = 1
	}
	return tx.Offset((page - 1) * perPage).Limit(perPage)
}
