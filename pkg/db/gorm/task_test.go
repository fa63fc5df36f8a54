package gorm_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kdb "github.com/psmphuket/portal/pkg/db"
)

func TestTaskStatusChange(t *testing.T) {
	database := testDatabase(t)
	ctx := context.Background()
	tasks := database.Tasks()

	task := &kdb.Task{Title: "Call the owner about viewing"}
	require.NoError(t, tasks.Register(ctx, task))
	assert.Equal(t, kdb.TaskOpen, task.Status)

	t.Run("completing sets CompletedAt", func(t *testing.T) {
		got, err := tasks.SetStatus(ctx, task.ID, kdb.TaskCompleted)
		require.NoError(t, err)
		assert.Equal(t, kdb.TaskCompleted, got.Status)
		require.NotNil(t, got.CompletedAt)
		assert.WithinDuration(t, time.Now(), *got.CompletedAt, time.Minute)
	})

	t.Run("leaving COMPLETED clears CompletedAt", func(t *testing.T) {
		got, err := tasks.SetStatus(ctx, task.ID, kdb.TaskPostponed)
		require.NoError(t, err)
		assert.Equal(t, kdb.TaskPostponed, got.Status)
		assert.Nil(t, got.CompletedAt)
	})

	t.Run("unknown task", func(t *testing.T) {
		_, err := tasks.SetStatus(ctx, "00000000-0000-0000-0000-000000000000", kdb.TaskOpen)
		assert.ErrorIs(t, err, kdb.ErrMissing)
	})
}

func TestTaskSurvivesPropertyDeletion(t *testing.T) {
	database := testDatabase(t)
	ctx := context.Background()

	prop := &kdb.Property{Title: "Sea View Villa", Price: 12_000_000, Type: kdb.ForSale}
	require.NoError(t, database.Properties().Register(ctx, prop))

	task := &kdb.Task{Title: "Arrange photos", PropertyID: &prop.ID}
	require.NoError(t, database.Tasks().Register(ctx, task))

	require.NoError(t, database.Properties().Delete(ctx, prop.ID))

	got, err := database.Tasks().Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Nil(t, got.PropertyID)
	assert.Nil(t, got.Property)
}

func TestTaskFindAndBulkDelete(t *testing.T) {
	database := testDatabase(t)
	ctx := context.Background()
	tasks := database.Tasks()

	due := time.Now().Add(24 * time.Hour)
	later := time.Now().Add(14 * 24 * time.Hour)
	seeded := []*kdb.Task{
		{Title: "Urgent call", Priority: kdb.PriorityUrgent, DueAt: &due},
		{Title: "Paperwork", Type: kdb.TaskPaperwork, DueAt: &later},
		{Title: "Follow up", Type: kdb.TaskFollowUp},
	}
	for _, task := range seeded {
		require.NoError(t, tasks.Register(ctx, task))
	}

	t.Run("priority filter", func(t *testing.T) {
		found, total, err := tasks.Find(ctx, kdb.TaskFindQuery{Priority: kdb.PriorityUrgent})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, found, 1)
		assert.Equal(t, "Urgent call", found[0].Title)
	})

	t.Run("dueBefore filter", func(t *testing.T) {
		cutoff := time.Now().Add(48 * time.Hour)
		_, total, err := tasks.Find(ctx, kdb.TaskFindQuery{DueBefore: &cutoff})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})

	t.Run("bulk delete reports affected rows", func(t *testing.T) {
		n, err := tasks.BulkDelete(ctx, []string{seeded[0].ID, seeded[1].ID, "not-an-id"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		_, total, err := tasks.Find(ctx, kdb.TaskFindQuery{})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})

	t.Run("bulk delete with no ids is a no-op", func(t *testing.T) {
		n, err := tasks.BulkDelete(ctx, nil)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}
