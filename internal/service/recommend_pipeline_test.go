package service

import (
	"testing"
	"time"

	"github.com/attune-cli/attune/internal/app"
	"github.com/attune-cli/attune/internal/domain"
	"github.com/attune-cli/attune/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gateContext(now time.Time, opts ...testutil.ContextOption) *RecommendationContext {
	uc := testutil.NewTestContext("alice", append([]testutil.ContextOption{testutil.WithContextNow(now)}, opts...)...)
	profile := testutil.NewTestProfile("INTJ",
		testutil.WithLoadThreshold(0.8),
		testutil.WithNudgeInterval(45),
		testutil.WithDailyLimit(4),
	)
	return &RecommendationContext{
		Now:     now,
		Context: *uc,
		Profile: *profile,
	}
}

func TestEvaluateGates_AllClear(t *testing.T) {
	rctx := gateContext(testClock())
	gate := EvaluateGates(rctx, 0.5, 0.8)
	assert.Nil(t, gate)
}

func TestEvaluateGates_TimingBelowThreshold(t *testing.T) {
	rctx := gateContext(testClock())
	gate := EvaluateGates(rctx, 0.5, 0.59)
	require.NotNil(t, gate)
	assert.Equal(t, app.GateTiming, gate.Code)
}

func TestEvaluateGates_TimingExactThresholdPasses(t *testing.T) {
	rctx := gateContext(testClock())
	gate := EvaluateGates(rctx, 0.5, 0.6)
	assert.Nil(t, gate)
}

func TestEvaluateGates_Frequency(t *testing.T) {
	now := testClock()
	rctx := gateContext(now)
	rctx.LastNudge = testutil.NewTestNudgeRecord("alice", "INTJ",
		testutil.WithNudgeCreatedAt(now.Add(-20*time.Minute)))

	gate := EvaluateGates(rctx, 0.5, 0.8)
	require.NotNil(t, gate)
	assert.Equal(t, app.GateFrequency, gate.Code)
}

func TestEvaluateGates_FrequencyClearedAfterInterval(t *testing.T) {
	now := testClock()
	rctx := gateContext(now)
	rctx.LastNudge = testutil.NewTestNudgeRecord("alice", "INTJ",
		testutil.WithNudgeCreatedAt(now.Add(-46*time.Minute)))

	assert.Nil(t, EvaluateGates(rctx, 0.5, 0.8))
}

func TestEvaluateGates_DailyLimit(t *testing.T) {
	rctx := gateContext(testClock())
	rctx.NudgesToday = 4

	gate := EvaluateGates(rctx, 0.5, 0.8)
	require.NotNil(t, gate)
	assert.Equal(t, app.GateDailyLimit, gate.Code)
}

func TestEvaluateGates_RecentDismissals(t *testing.T) {
	rctx := gateContext(testClock())
	rctx.RecentInteractions = []*domain.Interaction{
		testutil.NewTestInteraction("alice", "n1", "INTJ", testutil.WithOutcome(domain.OutcomeDismissed)),
		testutil.NewTestInteraction("alice", "n2", "INTJ", testutil.WithOutcome(domain.OutcomeAccepted)),
		testutil.NewTestInteraction("alice", "n3", "INTJ", testutil.WithOutcome(domain.OutcomeDismissed)),
	}

	gate := EvaluateGates(rctx, 0.5, 0.8)
	require.NotNil(t, gate)
	assert.Equal(t, app.GateRecentDismissals, gate.Code)
}

func TestEvaluateGates_SingleDismissalPasses(t *testing.T) {
	rctx := gateContext(testClock())
	rctx.RecentInteractions = []*domain.Interaction{
		testutil.NewTestInteraction("alice", "n1", "INTJ", testutil.WithOutcome(domain.OutcomeDismissed)),
	}

	assert.Nil(t, EvaluateGates(rctx, 0.5, 0.8))
}

func TestEvaluateGates_FlowState(t *testing.T) {
	rctx := gateContext(testClock(),
		testutil.WithFocusDuration(60),
		testutil.WithInterruptions(1))

	gate := EvaluateGates(rctx, 0.3, 0.8)
	require.NotNil(t, gate)
	assert.Equal(t, app.GateFlowState, gate.Code)
}

func TestEvaluateGates_FlowState_NotWhenOverloaded(t *testing.T) {
	// Above the load threshold the user needs the recovery nudge, flow or not.
	rctx := gateContext(testClock(),
		testutil.WithFocusDuration(60),
		testutil.WithInterruptions(1))

	assert.Nil(t, EvaluateGates(rctx, 0.85, 0.8))
}

func TestEvaluateGates_FlowState_NeedsLongStreak(t *testing.T) {
	rctx := gateContext(testClock(),
		testutil.WithFocusDuration(45),
		testutil.WithInterruptions(0))

	assert.Nil(t, EvaluateGates(rctx, 0.3, 0.8))
}

// Gates are checked in a fixed order; when several would fire, the earliest
// wins so the caller sees a stable reason.
func TestEvaluateGates_OrderIsStable(t *testing.T) {
	now := testClock()

	t.Run("timing beats frequency", func(t *testing.T) {
		rctx := gateContext(now)
		rctx.LastNudge = testutil.NewTestNudgeRecord("alice", "INTJ",
			testutil.WithNudgeCreatedAt(now.Add(-5*time.Minute)))

		gate := EvaluateGates(rctx, 0.5, 0.2)
		require.NotNil(t, gate)
		assert.Equal(t, app.GateTiming, gate.Code)
	})

	t.Run("frequency beats daily limit", func(t *testing.T) {
		rctx := gateContext(now)
		rctx.LastNudge = testutil.NewTestNudgeRecord("alice", "INTJ",
			testutil.WithNudgeCreatedAt(now.Add(-5*time.Minute)))
		rctx.NudgesToday = 10

		gate := EvaluateGates(rctx, 0.5, 0.8)
		require.NotNil(t, gate)
		assert.Equal(t, app.GateFrequency, gate.Code)
	})

	t.Run("daily limit beats dismissals", func(t *testing.T) {
		rctx := gateContext(now)
		rctx.NudgesToday = 10
		rctx.RecentInteractions = []*domain.Interaction{
			testutil.NewTestInteraction("alice", "n1", "INTJ", testutil.WithOutcome(domain.OutcomeDismissed)),
			testutil.NewTestInteraction("alice", "n2", "INTJ", testutil.WithOutcome(domain.OutcomeDismissed)),
		}

		gate := EvaluateGates(rctx, 0.5, 0.8)
		require.NotNil(t, gate)
		assert.Equal(t, app.GateDailyLimit, gate.Code)
	})
}
