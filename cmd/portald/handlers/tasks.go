package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apierr "github.com/psmphuket/portal/pkg/api/types/errors"
	kdb "github.com/psmphuket/portal/pkg/db"
)

func FindTaskHandler(dbtask kdb.TaskInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		q := kdb.TaskFindQuery{
			Status:     kdb.TaskStatus(c.QueryParam("status")),
			Priority:   kdb.TaskPriority(c.QueryParam("priority")),
			AssigneeID: c.QueryParam("assignee"),
			PropertyID: c.QueryParam("property"),
			Page:       queryInt(c, "page"),
			PerPage:    queryInt(c, "perPage"),
		}
		if q.Status != "" && !q.Status.Valid() {
			return apierr.BadRequest("unknown status filter", nil)
		}
		if q.Priority != "" && !q.Priority.Valid() {
			return apierr.BadRequest("unknown priority filter", nil)
		}
		if raw := c.QueryParam("dueBefore"); raw != "" {
			due, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				return apierr.BadRequest("dueBefore must be an RFC3339 timestamp", err)
			}
			q.DueBefore = &due
		}

		tasks, total, err := dbtask.Find(ctx, q)
		if err != nil {
			return fromDBError(err)
		}
		return c.JSON(http.StatusOK, listPage(tasks, total))
	}
}

func GetTaskHandler(dbtask kdb.TaskInterface, idParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		task, err := dbtask.Get(ctx, c.Param(idParam))
		if err != nil {
			return fromDBError(err)
		}
		return c.JSON(http.StatusOK, task)
	}
}

func TaskRegisterHandler(dbtask kdb.TaskInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		task := new(kdb.Task)
		if err := decodeJSON(c, task); err != nil {
			return err
		}
		if err := validateTask(task); err != nil {
			return err
		}

		if err := dbtask.Register(ctx, task); err != nil {
			return fromDBError(err)
		}
		return c.JSON(http.StatusCreated, task)
	}
}

func TaskUpdateHandler(dbtask kdb.TaskInterface, idParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		task := new(kdb.Task)
		if err := decodeJSON(c, task); err != nil {
			return err
		}
		task.ID = c.Param(idParam)
		if err := validateTask(task); err != nil {
			return err
		}

		if err := dbtask.Update(ctx, task); err != nil {
			return fromDBError(err)
		}
		return c.JSON(http.StatusOK, task)
	}
}

func validateTask(task *kdb.Task) error {
	if task.Title == "" {
		return apierr.BadRequest("title is required", nil)
	}
	if task.Type != "" && !task.Type.Valid() {
		return apierr.BadRequest("unknown task type", nil)
	}
	if task.Priority != "" && !task.Priority.Valid() {
		return apierr.BadRequest("unknown task priority", nil)
	}
	if task.Status != "" && !task.Status.Valid() {
		return apierr.BadRequest("unknown task status", nil)
	}
	return nil
}

func TaskSetStatusHandler(dbtask kdb.TaskInterface, idParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var body struct {
			Status kdb.TaskStatus `json:"status"`
		}
		if err := decodeJSON(c, &body); err != nil {
			return err
		}
		if !body.Status.Valid() {
			return apierr.BadRequest("unknown task status", nil)
		}

		task, err := dbtask.SetStatus(ctx, c.Param(idParam), body.Status)
		if err != nil {
			return fromDBError(err)
		}
		return c.JSON(http.StatusOK, task)
	}
}

func TaskDeleteHandler(dbtask kdb.TaskInterface, idParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if err := dbtask.Delete(ctx, c.Param(idParam)); err != nil {
			return fromDBError(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func TaskBulkDeleteHandler(dbtask kdb.TaskInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var body struct {
			IDs []string `json:"ids"`
		}
		if err := decodeJSON(c, &body); err != nil {
			return err
		}
		if len(body.IDs) == 0 {
			return apierr.BadRequest("ids can not be empty", nil)
		}

		deleted, err := dbtask.BulkDelete(ctx, body.IDs)
		if err != nil {
			return fromDBError(err)
		}
		return c.JSON(http.StatusOK, map[string]int64{"deleted": deleted})
	}
}
