package metrics

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sehatin/progress-api/internal/application/adapter/adaptertest"
	"github.com/sehatin/progress-api/internal/domain/entity"
)

func TestInstrumentProgressRepository(t *testing.T) {
	store := adaptertest.NewStore()
	reg := prometheus.NewRegistry()
	repo := InstrumentProgressRepository(store.Progress(), reg).(*instrumentedProgressRepository)
	ctx := context.Background()

	p := entity.NewUserProgress(1)
	require.NoError(t, repo.Create(ctx, p))
	assert.Error(t, repo.Create(ctx, p))

	p.OverallProgressPercentage = 40
	require.NoError(t, repo.Update(ctx, p))

	store.FailProgressUpdate = errors.New("down")
	assert.Error(t, repo.Update(ctx, p))

	assert.Equal(t, 1.0, testutil.ToFloat64(repo.updates.WithLabelValues("create", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(repo.updates.WithLabelValues("create", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(repo.updates.WithLabelValues("update", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(repo.updates.WithLabelValues("update", "error")))

	// Reads pass straight through.
	got, err := repo.FindByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 40.0, got.OverallProgressPercentage)
}
