package chainbench_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Pallinder/go-randomdata"
	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.llib.dev/singly/pkg/chainbench"
)

func NewTestHistory(tb testing.TB) *chainbench.History {
	path := filepath.Join(os.TempDir(), uuid.NewV4().String())
	history, err := chainbench.OpenHistory(path)
	require.NoError(tb, err)
	tb.Cleanup(func() {
		assert.NoError(tb, history.Close())
		assert.NoError(tb, os.Remove(path))
	})
	return history
}

func TestHistory_Save(t *testing.T) {
	t.Parallel()

	history := NewTestHistory(t)
	run := chainbench.Run{
		StartedAt: time.Now().UTC().Truncate(time.Second),
		Config:    chainbench.DefaultConfig(),
		Results: []chainbench.Result{{
			Variant:    chainbench.VariantRC,
			Workload:   chainbench.WorkloadInsertMiddle,
			Size:       100,
			Rounds:     1,
			Elapsed:    time.Millisecond,
			PerOp:      10 * time.Microsecond,
			Throughput: 100000,
		}},
	}

	require.NoError(t, history.Save(&run))
	require.NotEmpty(t, run.ID, "a new ID should be assigned to the run")

	runs, err := history.List()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	require.Equal(t, run.ID, runs[0].ID)
	require.True(t, run.StartedAt.Equal(runs[0].StartedAt))
	require.Equal(t, run.Config, runs[0].Config)
	require.Equal(t, run.Results, runs[0].Results)
}

func TestHistory_List(t *testing.T) {
	t.Parallel()

	history := NewTestHistory(t)

	runs, err := history.List()
	require.NoError(t, err)
	require.Empty(t, runs, "an empty history should have no runs")

	var ids []string
	for i := 0; i < 3; i++ {
		run := chainbench.Run{ID: randomdata.SillyName() + "-" + uuid.NewV4().String()}
		require.NoError(t, history.Save(&run))
		ids = append(ids, run.ID)
	}

	runs, err = history.List()
	require.NoError(t, err)
	require.Len(t, runs, 3)
	for i, run := range runs {
		require.Equal(t, ids[i], run.ID, "runs should be listed in the order of saving")
	}
}

func TestHistory_Lookup(t *testing.T) {
	t.Parallel()

	history := NewTestHistory(t)
	run := chainbench.Run{StartedAt: time.Now().UTC()}
	require.NoError(t, history.Save(&run))

	got, err := history.Lookup(run.ID)
	require.NoError(t, err)
	require.Equal(t, run.ID, got.ID)

	_, err = history.Lookup(uuid.NewV4().String())
	require.ErrorIs(t, err, chainbench.ErrRunNotFound)
}
