package chainbench_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.llib.dev/singly/pkg/chainbench"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

func TestMetrics(t *testing.T) {
	s := testcase.NewSpec(t)

	metrics := let.Var(s, func(t *testcase.T) *chainbench.Metrics {
		return chainbench.NewMetrics()
	})
	result := let.Var(s, func(t *testcase.T) chainbench.Result {
		return chainbench.Result{
			Variant:    chainbench.VariantArena,
			Workload:   chainbench.WorkloadPushHead,
			Size:       1000,
			Rounds:     1,
			Elapsed:    time.Millisecond,
			PerOp:      time.Microsecond,
			Throughput: 1e6,
		}
	})

	s.Describe("#Record", func(s *testcase.Spec) {
		act := let.Act(func(t *testcase.T) error {
			return metrics.Get(t).Record(context.Background(), result.Get(t))
		})

		s.Then("every metric gets a series for the case", func(t *testcase.T) {
			assert.NoError(t, act(t))

			n, err := testutil.GatherAndCount(metrics.Get(t).Gatherer(),
				"chainbench_throughput_ops_per_second",
				"chainbench_op_duration_seconds",
				"chainbench_cases_total")
			assert.NoError(t, err)
			assert.Equal(t, 3, n)
		})

		s.Then("recording the same case again keeps a single series", func(t *testcase.T) {
			assert.NoError(t, act(t))
			assert.NoError(t, act(t))

			n, err := testutil.GatherAndCount(metrics.Get(t).Gatherer(), "chainbench_cases_total")
			assert.NoError(t, err)
			assert.Equal(t, 1, n)
		})
	})

	s.Describe("#WriteText", func(s *testcase.Spec) {
		act := let.Act(func(t *testcase.T) string {
			var buf bytes.Buffer
			assert.NoError(t, metrics.Get(t).WriteText(&buf))
			return buf.String()
		})

		s.Then("nothing is written before a result is recorded", func(t *testcase.T) {
			assert.Empty(t, act(t))
		})

		s.When("a result was recorded", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				assert.NoError(t, metrics.Get(t).Record(context.Background(), result.Get(t)))
			})

			s.Then("the text exposition format is written", func(t *testcase.T) {
				out := act(t)

				assert.Contains(t, out, "# TYPE chainbench_throughput_ops_per_second gauge")
				assert.Contains(t, out, "# TYPE chainbench_op_duration_seconds histogram")
				assert.Contains(t, out, `variant="arena"`)
				assert.Contains(t, out, `workload="push_head"`)
				assert.Contains(t, out, `size="1000"`)
			})
		})
	})
}
