package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	apierr "github.com/psmphuket/portal/pkg/api/types/errors"
	kdb "github.com/psmphuket/portal/pkg/db"
	"github.com/psmphuket/portal/pkg/session"
)

// LoginHandler checks the credentials and issues a session token. Wrong
// email and wrong password are indistinguishable on purpose.
func LoginHandler(dbuser kdb.UserInterface, issuer *session.Issuer) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := decodeJSON(c, &body); err != nil {
			return err
		}
		if body.Email == "" || body.Password == "" {
			return apierr.BadRequest("email and password are required", nil)
		}

		user, err := dbuser.GetByEmail(ctx, body.Email)
		if err != nil {
			if errors.Is(err, kdb.ErrMissing) {
				return apierr.Unauthorized("email or password is wrong")
			}
			return fromDBError(err)
		}
		if !user.Active {
			return apierr.Unauthorized("email or password is wrong")
		}
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)) != nil {
			return apierr.Unauthorized("email or password is wrong")
		}

		token, err := issuer.Issue(user, time.Now())
		if err != nil {
			return apierr.InternalServerError(err)
		}
		return c.JSON(http.StatusOK, map[string]any{
			"token": token,
			"user":  user,
		})
	}
}

func FindUserHandler(dbuser kdb.UserInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		q := kdb.UserFindQuery{
			Role:   kdb.Role(c.QueryParam("role")),
			Active: queryBool(c, "active"),
		}
		if q.Role != "" && !q.Role.Valid() {
			return apierr.BadRequest("unknown role filter", nil)
		}

		users, err := dbuser.Find(ctx, q)
		if err != nil {
			return fromDBError(err)
		}
		if users == nil {
			users = []kdb.User{}
		}
		return c.JSON(http.StatusOK, users)
	}
}

type userRequest struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Role     kdb.Role `json:"role"`
	Phone    string   `json:"phone"`
	Active   *bool    `json:"active"`
}

func UserRegisterHandler(dbuser kdb.UserInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var body userRequest
		if err := decodeJSON(c, &body); err != nil {
			return err
		}
		if body.Name == "" || body.Email == "" {
			return apierr.BadRequest("name and email are required", nil)
		}
		if len(body.Password) < 8 {
			return apierr.BadRequest("password must be at least 8 characters", nil)
		}
		if body.Role != "" && !body.Role.Valid() {
			return apierr.BadRequest("role must be ADMIN, AGENT or OWNER", nil)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		user := &kdb.User{
			Name:         body.Name,
			Email:        body.Email,
			PasswordHash: string(hash),
			Role:         body.Role,
			Phone:        body.Phone,
			Active:       body.Active == nil || *body.Active,
		}
		if err := dbuser.Register(ctx, user); err != nil {
			return fromDBError(err)
		}
		return c.JSON(http.StatusCreated, user)
	}
}

func UserUpdateHandler(dbuser kdb.UserInterface, idParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var body userRequest
		if err := decodeJSON(c, &body); err != nil {
			return err
		}
		if body.Name == "" || body.Email == "" {
			return apierr.BadRequest("name and email are required", nil)
		}
		if body.Role != "" && !body.Role.Valid() {
			return apierr.BadRequest("role must be ADMIN, AGENT or OWNER", nil)
		}
		if body.Password != "" && len(body.Password) < 8 {
			return apierr.BadRequest("password must be at least 8 characters", nil)
		}

		user := &kdb.User{
			ID:     c.Param(idParam),
			Name:   body.Name,
			Email:  body.Email,
			Role:   body.Role,
			Phone:  body.Phone,
			Active: body.Active == nil || *body.Active,
		}
		if body.Password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
			if err != nil {
				return apierr.InternalServerError(err)
			}
			user.PasswordHash = string(hash)
		}

		if err := dbuser.Update(ctx, user); err != nil {
			return fromDBError(err)
		}
		return c.JSON(http.StatusOK, user)
	}
}

func UserDeleteHandler(dbuser kdb.UserInterface, idParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if err := dbuser.Delete(ctx, c.Param(idParam)); err != nil {
			return fromDBError(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
