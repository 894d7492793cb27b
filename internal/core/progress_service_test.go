package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/fitplanner-backend/internal/models"
)

func TestProgressCreateAndList(t *testing.T) {
	repo := newFakeProgressRepo()
	svc := NewProgressService(repo)

	_, err := svc.Create(context.Background(), "uid-1", models.CreateProgressRequest{Date: "2024-02-01", Weight: 64.5})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "uid-1", models.CreateProgressRequest{Date: "2024-01-01", Weight: 65, Note: "start"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "uid-2", models.CreateProgressRequest{Date: "2024-01-15", Weight: 80})
	require.NoError(t, err)

	logs, err := svc.List(context.Background(), "uid-1")

	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "2024-01-01", logs[0].Date, "logs ordered by date ascending")
	assert.Equal(t, "2024-02-01", logs[1].Date)
}

func TestProgressUpdate_AppliesOnlyProvidedFields(t *testing.T) {
	repo := newFakeProgressRepo(&models.ProgressLog{ID: "log-a", UserID: "uid-1", Date: "2024-01-01", Weight: 65, Note: "start"})
	svc := NewProgressService(repo)

	weight := 64.0
	updated, err := svc.Update(context.Background(), "uid-1", "log-a", models.UpdateProgressRequest{Weight: &weight})

	require.NoError(t, err)
	assert.Equal(t, 64.0, updated.Weight)
	assert.Equal(t, "2024-01-01", updated.Date)
	assert.Equal(t, "start", updated.Note)
}

func TestProgressUpdate_ForbiddenForOtherUser(t *testing.T) {
	repo := newFakeProgressRepo(&models.ProgressLog{ID: "log-a", UserID: "uid-1", Weight: 65})
	svc := NewProgressService(repo)

	weight := 1.0
	_, err := svc.Update(context.Background(), "uid-2", "log-a", models.UpdateProgressRequest{Weight: &weight})

	assert.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, 65.0, repo.logs["log-a"].Weight, "record must stay intact")
}

func TestProgressDelete(t *testing.T) {
	repo := newFakeProgressRepo(&models.ProgressLog{ID: "log-a", UserID: "uid-1"})
	svc := NewProgressService(repo)

	assert.ErrorIs(t, svc.Delete(context.Background(), "uid-2", "log-a"), ErrForbidden)
	assert.ErrorIs(t, svc.Delete(context.Background(), "uid-1", "missing"), ErrRecordNotFound)

	require.NoError(t, svc.Delete(context.Background(), "uid-1", "log-a"))
	assert.Empty(t, repo.logs)
}
