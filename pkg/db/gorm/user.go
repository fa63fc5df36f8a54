package gorm

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	kdb "github.com/psmphuket/portal/pkg/db"
)

type userPG struct {
	conn *gorm.DB
}

var _ kdb.UserInterface = &userPG{}

func (u *userPG) Find(ctx context.Context, q kdb.UserFindQuery) ([]kdb.User, error) {
	tx := u.conn.WithContext(ctx).Model(&kdb.User{})

	if q.Role != "" {
		tx = tx.Where("role = ?", q.Role)
	}
	if q.Active != nil {
		tx = tx.Where("active = ?", *q.Active)
	}

	var users []kdb.User
	if err := tx.Order("name").Find(&users).Error; err != nil {
		return nil, translate(err)
	}
	return users, nil
}

func (u *userPG) Get(ctx context.Context, id string) (*kdb.User, error) {
	var user kdb.User
	err := u.conn.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (u *userPG) GetByEmail(ctx context.Context, email string) (*kdb.User, error) {
	var user kdb.User
	err := u.conn.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (u *userPG) Register(ctx context.Context, user *kdb.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.Role == "" {
		user.Role = kdb.RoleAgent
	}
	return translate(u.conn.WithContext(ctx).Create(user).Error)
}

func (u *userPG) Update(ctx context.Context, user *kdb.User) error {
	// empty Role and PasswordHash mean "leave as is"
	sel := []string{"Name", "Email", "Phone", "Active"}
	if user.Role != "" {
		sel = append(sel, "Role")
	}
	if user.PasswordHash != "" {
		sel = append(sel, "PasswordHash")
	}
	result := u.conn.WithContext(ctx).
		Model(&kdb.User{}).
		Where("id = ?", user.ID).
		Select(sel).
		Updates(user)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return kdb.ErrMissing
	}
	return nil
}

func (u *userPG) Delete(ctx context.Context, id string) error {
	result := u.conn.WithContext(ctx).Delete(&kdb.User{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return kdb.ErrMissing
	}
	return nil
}
