package scrollsync

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"codediff/internal/ui/services/events"
)

// fakeViewport records scroll writes
type fakeViewport struct {
	id     string
	writes [][2]int
}

func (v *fakeViewport) ID() string { return v.id }
func (v *fakeViewport) SetScroll(top, left int) {
	v.writes = append(v.writes, [2]int{top, left})
}

// fakeScheduler runs nothing until told to
type fakeScheduler struct {
	timers   []*fakeTimer
	deferred []func()
}

type fakeTimer struct {
	fn        func()
	cancelled bool
}

func (s *fakeScheduler) AfterFunc(_ time.Duration, fn func()) func() {
	t := &fakeTimer{fn: fn}
	s.timers = append(s.timers, t)
	return func() { t.cancelled = true }
}

func (s *fakeScheduler) Defer(fn func()) {
	s.deferred = append(s.deferred, fn)
}

// settle runs all deferred work, i.e. advances to the next scheduling point
func (s *fakeScheduler) settle() {
	pending := s.deferred
	s.deferred = nil
	for _, fn := range pending {
		fn()
	}
}

// fireTimers fires every live timer, i.e. the indicator delay elapses
func (s *fakeScheduler) fireTimers() {
	pending := s.timers
	s.timers = nil
	for _, t := range pending {
		if !t.cancelled {
			t.fn()
		}
	}
}

func newTestService() (*Service, *fakeScheduler, *fakeViewport, *fakeViewport, *fakeViewport) {
	sched := &fakeScheduler{}
	svc := NewService(&events.NullBus{}, sched, 0)
	a := &fakeViewport{id: "a"}
	b := &fakeViewport{id: "b"}
	c := &fakeViewport{id: "c"}
	svc.Register(a)
	svc.Register(b)
	svc.Register(c)
	return svc, sched, a, b, c
}

func TestOnScrollFansOutToSiblings(t *testing.T) {
	t.Parallel()

	svc, sched, a, b, c := newTestService()

	svc.OnScroll("a", 10, 2)
	sched.settle()

	require.Empty(t, a.writes, "source pane is not written")
	require.Equal(t, [][2]int{{10, 2}}, b.writes)
	require.Equal(t, [][2]int{{10, 2}}, c.writes)
	require.True(t, svc.IsSynced("b"))
	require.True(t, svc.IsSynced("c"))
	require.False(t, svc.IsSynced("a"))
}

func TestGuardSwallowsReentrantEvents(t *testing.T) {
	t.Parallel()

	svc, sched, a, _, _ := newTestService()

	// A viewport whose write raises a scroll notification back into the
	// coordinator, like some toolkits do. Registering under "b" replaces
	// the plain fake from newTestService.
	reentrant := &fakeViewport{id: "b"}
	svc.Register(&echoViewport{inner: reentrant, svc: svc})

	svc.OnScroll("a", 5, 0)

	// The echo must have been ignored: nothing written back into a.
	require.Empty(t, a.writes)
	require.Equal(t, [][2]int{{5, 0}}, reentrant.writes)

	// After settling, the guard is released and a new scroll works again.
	sched.settle()
	svc.OnScroll("c", 7, 1)
	sched.settle()
	require.Equal(t, [][2]int{{5, 0}, {7, 1}}, reentrant.writes)
}

// echoViewport re-raises OnScroll from inside SetScroll
type echoViewport struct {
	inner *fakeViewport
	svc   *Service
}

func (v *echoViewport) ID() string { return v.inner.id }
func (v *echoViewport) SetScroll(top, left int) {
	v.inner.SetScroll(top, left)
	v.svc.OnScroll(v.inner.id, top, left)
}

func TestGuardIsIgnoredUntilNextSchedulingPoint(t *testing.T) {
	t.Parallel()

	svc, sched, _, b, _ := newTestService()

	svc.OnScroll("a", 1, 0)
	// Same turn, guard still set: ignored entirely.
	svc.OnScroll("a", 2, 0)
	require.Equal(t, [][2]int{{1, 0}}, b.writes)

	sched.settle()
	svc.OnScroll("a", 3, 0)
	require.Equal(t, [][2]int{{1, 0}, {3, 0}}, b.writes)
}

func TestGuardReleaseIsIdempotent(t *testing.T) {
	t.Parallel()

	svc, sched, _, b, _ := newTestService()

	svc.OnScroll("a", 1, 0)
	sched.settle()
	sched.settle() // releasing twice must be harmless

	svc.OnScroll("a", 2, 0)
	sched.settle()
	require.Len(t, b.writes, 2)
}

func TestIndicatorTimerClearsSyncedSet(t *testing.T) {
	t.Parallel()

	svc, sched, _, _, _ := newTestService()

	svc.OnScroll("a", 1, 0)
	sched.settle()
	require.Equal(t, []string{"b", "c"}, svc.SyncedIDs())

	sched.fireTimers()
	require.Empty(t, svc.SyncedIDs())
}

func TestIndicatorTimerIsRestartedByNewScroll(t *testing.T) {
	t.Parallel()

	svc, sched, _, _, _ := newTestService()

	svc.OnScroll("a", 1, 0)
	sched.settle()
	firstTimer := sched.timers[0]

	svc.OnScroll("a", 2, 0)
	sched.settle()
	require.True(t, firstTimer.cancelled, "earlier indicator timer is cancelled")

	sched.fireTimers()
	require.Empty(t, svc.SyncedIDs())
}

func TestIdenticalScrollsProduceOneWritePerSiblingEach(t *testing.T) {
	t.Parallel()

	svc, sched, _, b, c := newTestService()

	svc.OnScroll("a", 4, 0)
	sched.settle()
	svc.OnScroll("a", 4, 0)
	sched.settle()

	require.Equal(t, [][2]int{{4, 0}, {4, 0}}, b.writes)
	require.Equal(t, [][2]int{{4, 0}, {4, 0}}, c.writes)

	// No deadlock: guard always released.
	svc.OnScroll("b", 9, 0)
	require.Equal(t, [][2]int{{4, 0}, {4, 0}, {9, 0}}, c.writes)
}

func TestDisabledCoordinatorIgnoresScrolls(t *testing.T) {
	t.Parallel()

	svc, sched, _, b, _ := newTestService()

	svc.SetEnabled(false)
	svc.OnScroll("a", 1, 0)
	sched.settle()
	require.Empty(t, b.writes)
	require.False(t, svc.IsSynced("b"))

	svc.SetEnabled(true)
	svc.OnScroll("a", 1, 0)
	require.Equal(t, [][2]int{{1, 0}}, b.writes)
}

func TestUnregisterRemovesPaneFromFanOut(t *testing.T) {
	t.Parallel()

	svc, sched, _, b, c := newTestService()

	svc.Unregister("c")
	svc.OnScroll("a", 1, 0)
	sched.settle()

	require.Equal(t, [][2]int{{1, 0}}, b.writes)
	require.Empty(t, c.writes)
}
