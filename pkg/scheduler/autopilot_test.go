package scheduler

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postpilot/postpilot/pkg/domain"
	"github.com/postpilot/postpilot/pkg/generator"
	"github.com/postpilot/postpilot/pkg/memory"
	"github.com/postpilot/postpilot/pkg/repository"
	"github.com/postpilot/postpilot/pkg/scheduler/mocks"
)

// autopilotFixture wires an autopilot against mocks with controllable time
type autopilotFixture struct {
	ap      *AutoPilot
	gen     *mocks.GeneratorMock
	stager  *mocks.StagerMock
	content *mocks.ContentStoreMock
	state   *mocks.StateStoreMock
	mem     *mocks.MemoryStoreMock
	clock   *fakeClock
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func newAutopilotFixture(t *testing.T, defaults domain.AutoPilotState) *autopilotFixture {
	t.Helper()

	f := &autopilotFixture{
		gen: &mocks.GeneratorMock{
			GenerateFunc: func(ctx context.Context, req generator.Request) ([]*domain.ContentItem, error) {
				return []*domain.ContentItem{{
					ID:        "gen-1",
					Platforms: []domain.Platform{domain.PlatformLinkedIn},
					Topic:     "new feature",
					Body:      "We shipped something. Details inside.",
					Status:    domain.StatusDraft,
				}}, nil
			},
		},
		stager: &mocks.StagerMock{
			StageFunc: func(ctx context.Context, items []*domain.ContentItem) error { return nil },
		},
		content: &mocks.ContentStoreMock{
			CreateItemFunc: func(ctx context.Context, item *domain.ContentItem) error { return nil },
		},
		state: &mocks.StateStoreMock{
			GetFunc: func(ctx context.Context, namespace string) ([]byte, error) { return nil, nil },
			SetFunc: func(ctx context.Context, namespace string, value []byte) error { return nil },
		},
		mem: &mocks.MemoryStoreMock{
			RecordFunc:    func(category memory.Category, value string) {},
			AvoidListFunc: func(category memory.Category, recentN int) []string { return nil },
			SnapshotFunc:  func() ([]byte, error) { return []byte("{}"), nil },
			RestoreFunc:   func(data []byte) error { return nil },
		},
		clock: &fakeClock{now: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)},
	}

	if defaults.PostingFrequency == nil {
		defaults.PostingFrequency = map[domain.Platform]int{domain.PlatformLinkedIn: 1}
	}
	f.ap = NewAutoPilot(AutoPilotConfig{
		Generator:   f.gen,
		Stager:      f.stager,
		Content:     f.content,
		State:       f.state,
		Memory:      f.mem,
		RetryDelay:  time.Millisecond,
		AvoidRecent: 20,
		Defaults:    defaults,
	})
	f.ap.now = f.clock.Now
	return f
}

func TestAutoPilot_EnableDisable(t *testing.T) {
	f := newAutopilotFixture(t, domain.AutoPilotState{})
	ctx := context.Background()

	require.NoError(t, f.ap.Enable(ctx, 6))
	st := f.ap.Status()
	assert.True(t, st.Enabled)
	assert.True(t, st.IsScheduled)
	assert.Equal(t, 6, st.IntervalHours)
	require.NotNil(t, st.NextGeneration)
	assert.Equal(t, f.clock.Now().Add(6*time.Hour), *st.NextGeneration)

	require.NoError(t, f.ap.Disable(ctx))
	st = f.ap.Status()
	assert.False(t, st.Enabled)
	assert.False(t, st.IsScheduled)
	assert.Nil(t, st.NextGeneration)

	// every mutation is persisted
	assert.Len(t, f.state.SetCalls(), 2)
}

func TestAutoPilot_TickFiresOnce(t *testing.T) {
	f := newAutopilotFixture(t, domain.AutoPilotState{})
	ctx := context.Background()

	base := f.clock.Now()
	require.NoError(t, f.ap.Enable(ctx, 1))

	due := base.Add(time.Hour)
	f.clock.Set(due)
	for i := 0; i < 5; i++ {
		f.ap.Tick(ctx, due.Add(time.Duration(i)*time.Second))
	}

	assert.Len(t, f.gen.GenerateCalls(), 1, "an expired timer fires exactly once")

	st := f.ap.Status()
	require.NotNil(t, st.NextGeneration)
	assert.Equal(t, due.Add(time.Hour), *st.NextGeneration, "rearm counts from completion time")
}

func TestAutoPilot_TickNotDue(t *testing.T) {
	f := newAutopilotFixture(t, domain.AutoPilotState{})
	ctx := context.Background()

	base := f.clock.Now()
	require.NoError(t, f.ap.Enable(ctx, 1))

	f.ap.Tick(ctx, base.Add(59*time.Minute))
	assert.Empty(t, f.gen.GenerateCalls())
}

func TestAutoPilot_DisabledNeverFires(t *testing.T) {
	f := newAutopilotFixture(t, domain.AutoPilotState{})
	ctx := context.Background()

	f.ap.Tick(ctx, f.clock.Now().Add(100*time.Hour))
	assert.Empty(t, f.gen.GenerateCalls())
}

func TestAutoPilot_ReEnableResetsCountdown(t *testing.T) {
	f := newAutopilotFixture(t, domain.AutoPilotState{})
	ctx := context.Background()

	base := f.clock.Now()
	require.NoError(t, f.ap.Enable(ctx, 2))
	require.NoError(t, f.ap.Disable(ctx))

	// half an hour later the operator changes their mind
	f.clock.Set(base.Add(30 * time.Minute))
	require.NoError(t, f.ap.Enable(ctx, 0))

	st := f.ap.Status()
	assert.Equal(t, 2, st.IntervalHours, "zero interval keeps the configured one")
	require.NotNil(t, st.NextGeneration)
	assert.Equal(t, base.Add(30*time.Minute).Add(2*time.Hour), *st.NextGeneration,
		"countdown restarts from re-enable, not from the old schedule")
}

func TestAutoPilot_RetryThenSuccess(t *testing.T) {
	f := newAutopilotFixture(t, domain.AutoPilotState{AutoApprove: true})
	ctx := context.Background()

	calls := 0
	f.gen.GenerateFunc = func(ctx context.Context, req generator.Request) ([]*domain.ContentItem, error) {
		calls++
		if calls == 1 {
			return nil, &domain.GenerationError{Kind: domain.GenerationNoProvider}
		}
		return []*domain.ContentItem{{
			ID:        "gen-1",
			Platforms: []domain.Platform{domain.PlatformLinkedIn},
			Topic:     "second try",
			Body:      "Worked this time.",
		}}, nil
	}

	require.NoError(t, f.ap.Enable(ctx, 1))
	f.clock.Set(f.clock.Now().Add(time.Hour))
	f.ap.Tick(ctx, f.clock.Now())

	assert.Equal(t, 2, calls, "retryable failure gets exactly one more attempt")
	assert.Empty(t, f.ap.Status().LastFailure, "a recovered run surfaces no error")
	assert.Len(t, f.content.CreateItemCalls(), 1)
}

func TestAutoPilot_RetryExhausted(t *testing.T) {
	f := newAutopilotFixture(t, domain.AutoPilotState{})
	ctx := context.Background()

	f.gen.GenerateFunc = func(ctx context.Context, req generator.Request) ([]*domain.ContentItem, error) {
		return nil, &domain.GenerationError{Kind: domain.GenerationEmpty}
	}

	require.NoError(t, f.ap.Enable(ctx, 1))
	f.clock.Set(f.clock.Now().Add(time.Hour))
	f.ap.Tick(ctx, f.clock.Now())

	assert.Len(t, f.gen.GenerateCalls(), 2)
	st := f.ap.Status()
	assert.Contains(t, st.LastFailure, "empty")
	require.NotNil(t, st.NextGeneration, "a failed run still rearms the timer")
}

func TestAutoPilot_NonRetryableFailsFast(t *testing.T) {
	f := newAutopilotFixture(t, domain.AutoPilotState{})
	ctx := context.Background()

	f.gen.GenerateFunc = func(ctx context.Context, req generator.Request) ([]*domain.ContentItem, error) {
		return nil, &domain.GenerationError{Kind: domain.GenerationOther}
	}

	require.NoError(t, f.ap.Enable(ctx, 1))
	f.clock.Set(f.clock.Now().Add(time.Hour))
	f.ap.Tick(ctx, f.clock.Now())

	assert.Len(t, f.gen.GenerateCalls(), 1, "non-retryable failures get no second attempt")
	assert.NotEmpty(t, f.ap.Status().LastFailure)
}

func TestAutoPilot_DisableDuringRunWins(t *testing.T) {
	f := newAutopilotFixture(t, domain.AutoPilotState{})
	ctx := context.Background()

	f.gen.GenerateFunc = func(genCtx context.Context, req generator.Request) ([]*domain.ContentItem, error) {
		// operator disables while the batch is being generated
		require.NoError(t, f.ap.Disable(ctx))
		return []*domain.ContentItem{{ID: "gen-1", Platforms: []domain.Platform{domain.PlatformLinkedIn}, Topic: "t", Body: "b."}}, nil
	}

	require.NoError(t, f.ap.Enable(ctx, 1))
	f.clock.Set(f.clock.Now().Add(time.Hour))
	f.ap.Tick(ctx, f.clock.Now())

	st := f.ap.Status()
	assert.False(t, st.Enabled)
	assert.Nil(t, st.NextGeneration, "completion does not rearm a disabled autopilot")
}

func TestAutoPilot_GenerateNowGuard(t *testing.T) {
	f := newAutopilotFixture(t, domain.AutoPilotState{})
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	f.gen.GenerateFunc = func(ctx context.Context, req generator.Request) ([]*domain.ContentItem, error) {
		close(started)
		<-release
		return nil, nil
	}

	done := make(chan error, 1)
	go func() { done <- f.ap.GenerateNow(ctx) }()
	<-started

	err := f.ap.GenerateNow(ctx)
	require.Error(t, err, "second trigger while one is running is rejected")
	assert.Contains(t, err.Error(), "in flight")

	close(release)
	require.NoError(t, <-done)
}

func TestAutoPilot_AutoApproveSpreadsSchedule(t *testing.T) {
	f := newAutopilotFixture(t, domain.AutoPilotState{
		AutoApprove:      true,
		PostingFrequency: map[domain.Platform]int{domain.PlatformTwitter: 2},
	})
	ctx := context.Background()

	f.gen.GenerateFunc = func(ctx context.Context, req generator.Request) ([]*domain.ContentItem, error) {
		return []*domain.ContentItem{
			{ID: "a", Platforms: []domain.Platform{domain.PlatformTwitter}, Topic: "one", Body: "First post."},
			{ID: "b", Platforms: []domain.Platform{domain.PlatformTwitter}, Topic: "two", Body: "Second post."},
		}, nil
	}

	require.NoError(t, f.ap.Enable(ctx, 3))
	completed := f.clock.Now().Add(3 * time.Hour)
	f.clock.Set(completed)
	f.ap.Tick(ctx, completed)

	calls := f.content.CreateItemCalls()
	require.Len(t, calls, 2)
	for _, call := range calls {
		assert.Equal(t, domain.StatusScheduled, call.Item.Status)
		assert.True(t, call.Item.AutoPublish)
		require.NotNil(t, call.Item.ScheduledTime)
	}
	assert.Equal(t, completed.Add(time.Hour), *calls[0].Item.ScheduledTime)
	assert.Equal(t, completed.Add(2*time.Hour), *calls[1].Item.ScheduledTime)
	assert.Empty(t, f.stager.StageCalls())
}

func TestAutoPilot_ManualReviewStagesItems(t *testing.T) {
	f := newAutopilotFixture(t, domain.AutoPilotState{AutoApprove: false})
	ctx := context.Background()

	require.NoError(t, f.ap.Enable(ctx, 1))
	f.clock.Set(f.clock.Now().Add(time.Hour))
	f.ap.Tick(ctx, f.clock.Now())

	require.Len(t, f.stager.StageCalls(), 1)
	assert.Len(t, f.stager.StageCalls()[0].Items, 1)
	assert.Empty(t, f.content.CreateItemCalls())
}

func TestAutoPilot_RoutingFailureSurfaces(t *testing.T) {
	t.Run("staging fails", func(t *testing.T) {
		f := newAutopilotFixture(t, domain.AutoPilotState{AutoApprove: false})
		f.stager.StageFunc = func(ctx context.Context, items []*domain.ContentItem) error {
			return errors.New("review store down")
		}

		require.NoError(t, f.ap.GenerateNow(context.Background()))
		assert.Contains(t, f.ap.Status().LastFailure, "review store down",
			"a generated batch that cannot be staged is not a clean run")
	})

	t.Run("auto-approve storage fails", func(t *testing.T) {
		f := newAutopilotFixture(t, domain.AutoPilotState{AutoApprove: true})
		f.content.CreateItemFunc = func(ctx context.Context, item *domain.ContentItem) error {
			return errors.New("disk full")
		}

		require.NoError(t, f.ap.GenerateNow(context.Background()))
		assert.Contains(t, f.ap.Status().LastFailure, "disk full")
	})
}

func TestAutoPilot_RecordsMemoryAfterSuccess(t *testing.T) {
	f := newAutopilotFixture(t, domain.AutoPilotState{AutoApprove: true})
	ctx := context.Background()

	f.gen.GenerateFunc = func(ctx context.Context, req generator.Request) ([]*domain.ContentItem, error) {
		return []*domain.ContentItem{
			{ID: "a", Platforms: []domain.Platform{domain.PlatformEmail}, Topic: "June digest", Body: "Here is what happened. More below."},
			{ID: "b", Platforms: []domain.Platform{domain.PlatformTwitter}, Topic: "June digest teaser", Body: "Big month! Thread below."},
		}, nil
	}

	require.NoError(t, f.ap.Enable(ctx, 1))
	f.clock.Set(f.clock.Now().Add(time.Hour))
	f.ap.Tick(ctx, f.clock.Now())

	recorded := map[memory.Category][]string{}
	for _, call := range f.mem.RecordCalls() {
		recorded[call.Category] = append(recorded[call.Category], call.Value)
	}
	assert.ElementsMatch(t, []string{"June digest", "June digest teaser"}, recorded[memory.CategoryTopics])
	assert.Equal(t, []string{"June digest"}, recorded[memory.CategorySubjects])
	assert.Equal(t, []string{"Big month!"}, recorded[memory.CategoryLeads])

	// snapshot is persisted to the state store
	var memPersisted bool
	for _, call := range f.state.SetCalls() {
		if call.Namespace == repository.NamespaceMemory {
			memPersisted = true
		}
	}
	assert.True(t, memPersisted)
}

func TestAutoPilot_NoMemoryOnFailure(t *testing.T) {
	f := newAutopilotFixture(t, domain.AutoPilotState{})
	ctx := context.Background()

	f.gen.GenerateFunc = func(ctx context.Context, req generator.Request) ([]*domain.ContentItem, error) {
		return nil, &domain.GenerationError{Kind: domain.GenerationOther}
	}

	require.NoError(t, f.ap.Enable(ctx, 1))
	f.clock.Set(f.clock.Now().Add(time.Hour))
	f.ap.Tick(ctx, f.clock.Now())

	assert.Empty(t, f.mem.RecordCalls())
}

func TestAutoPilot_BuildRequestUsesAvoidLists(t *testing.T) {
	f := newAutopilotFixture(t, domain.AutoPilotState{
		PostingFrequency: map[domain.Platform]int{domain.PlatformLinkedIn: 2, domain.PlatformEmail: 1},
	})
	ctx := context.Background()

	f.mem.AvoidListFunc = func(category memory.Category, recentN int) []string {
		if category == memory.CategoryTopics {
			assert.Equal(t, 20, recentN)
			return []string{"old topic"}
		}
		return nil
	}

	require.NoError(t, f.ap.GenerateNow(ctx))

	calls := f.gen.GenerateCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, map[domain.Platform]int{domain.PlatformLinkedIn: 2, domain.PlatformEmail: 1}, calls[0].Req.Counts)
	assert.Equal(t, map[string][]string{"topics": {"old topic"}}, calls[0].Req.AvoidLists)
}

func TestAutoPilot_Configure(t *testing.T) {
	f := newAutopilotFixture(t, domain.AutoPilotState{})
	ctx := context.Background()

	autoApprove := true
	err := f.ap.Configure(ctx, Settings{
		Cadence:          domain.CadenceDaily,
		PostingFrequency: map[domain.Platform]int{domain.PlatformFacebook: 3},
		AutoApprove:      &autoApprove,
	})
	require.NoError(t, err)

	st := f.ap.Status()
	assert.Equal(t, domain.CadenceDaily, st.Cadence)
	assert.Equal(t, 3, st.PostingFrequency[domain.PlatformFacebook])
	assert.True(t, st.AutoApprove)

	t.Run("unknown cadence rejected", func(t *testing.T) {
		err := f.ap.Configure(ctx, Settings{Cadence: "hourly"})
		assert.Error(t, err)
	})

	t.Run("unknown platform rejected", func(t *testing.T) {
		err := f.ap.Configure(ctx, Settings{PostingFrequency: map[domain.Platform]int{"myspace": 1}})
		assert.Error(t, err)
	})

	t.Run("negative frequency rejected", func(t *testing.T) {
		err := f.ap.Configure(ctx, Settings{PostingFrequency: map[domain.Platform]int{domain.PlatformEmail: -1}})
		assert.Error(t, err)
	})
}

func TestAutoPilot_LoadRestoresState(t *testing.T) {
	f := newAutopilotFixture(t, domain.AutoPilotState{})
	ctx := context.Background()

	next := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	persisted, err := json.Marshal(domain.AutoPilotState{
		Enabled:        true,
		Cadence:        domain.CadenceDaily,
		IsScheduled:    true,
		NextGeneration: &next,
		IntervalHours:  12,
	})
	require.NoError(t, err)

	f.state.GetFunc = func(ctx context.Context, namespace string) ([]byte, error) {
		switch namespace {
		case repository.NamespaceAutoPilot:
			return persisted, nil
		case repository.NamespaceMemory:
			return []byte(`{"topics":["old"]}`), nil
		}
		return nil, nil
	}

	require.NoError(t, f.ap.Load(ctx))

	st := f.ap.Status()
	assert.True(t, st.Enabled)
	assert.Equal(t, 12, st.IntervalHours)
	require.NotNil(t, st.NextGeneration)
	assert.Equal(t, next, *st.NextGeneration)

	require.Len(t, f.mem.RestoreCalls(), 1)
	assert.JSONEq(t, `{"topics":["old"]}`, string(f.mem.RestoreCalls()[0].Data))
}
