// Package session is the workout session engine: the lifecycle of the single
// in-progress workout per user, its timers, its set-by-set mutation, and its
// reconciliation into a permanent record plus attendance state on completion.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"gymdesk/internal/domain/attendance"
	"gymdesk/internal/domain/workout"
)

// State is the lifecycle phase of a user's session. A user with no active
// session is in the implicit StateAbsent.
type State string

// Session states.
const (
	StateAbsent    State = "absent"
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StatePaused    State = "paused"
	StateCompleted State = "completed"
)

// Engine errors
var (
	ErrNoSession      = errors.New("no active workout session")
	ErrNoPlanDay      = errors.New("plan has no such day")
	ErrNotRunning     = errors.New("session is not running")
	ErrNotCompleted   = errors.New("session must be completed before finishing")
	ErrInvalidFeeling = errors.New("feeling rating must be between 1 and 5")
)

// WorkoutStore is the persistence surface the engine needs.
type WorkoutStore interface {
	Active(ctx context.Context, userID string) (workout.Session, bool)
	SaveActive(ctx context.Context, userID string, s *workout.Session) error
	AppendRecord(ctx context.Context, rec workout.Record) error
}

// AttendanceTracker records a "present" day and recomputes the streak.
// Invoked by the engine on Finish.
type AttendanceTracker interface {
	LogPresent(ctx context.Context, userID, date string) error
}

// Deps holds the engine's injected collaborators.
type Deps struct {
	Workouts   WorkoutStore
	Tracker    AttendanceTracker
	Now        func() time.Time
	GenerateID func() string
	Tick       time.Duration // timer tick interval; one second when unset
}

// Summary is the staged completion data shown for confirmation before Finish.
type Summary struct {
	TotalVolume     int
	DurationSeconds int
	Duration        string // MM:SS
	ProgressPercent int
}

// runState is the in-memory side of one user's session: phase and timers.
// The session document itself lives in the store.
type runState struct {
	phase   State
	elapsed int // seconds accumulated while running
	ticker  chan struct{}
	rest    *restTimer
}

// Engine manages active workout sessions for all users of the process.
// Constructed once at startup; Close stops every timer.
type Engine struct {
	mu    sync.Mutex
	deps  Deps
	users map[string]*runState
}

// NewEngine creates an Engine. Now and GenerateID default to time.Now and
// uuid when unset.
func NewEngine(deps Deps) *Engine {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.GenerateID == nil {
		deps.GenerateID = func() string { return uuid.New().String() }
	}
	if deps.Tick <= 0 {
		deps.Tick = time.Second
	}
	return &Engine{deps: deps, users: make(map[string]*runState)}
}

// State reports the lifecycle phase for a user.
// POST: StateAbsent when no session exists, StateIdle for a stored session
// the process has not touched yet
func (e *Engine) State(ctx context.Context, userID string) State {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rs, ok := e.users[userID]; ok {
		return rs.phase
	}
	if _, ok := e.deps.Workouts.Active(ctx, userID); ok {
		return StateIdle
	}
	return StateAbsent
}

// Start creates (or resumes) an assigned-plan session for one day of the
// plan. An existing session whose source or plan code does not match is
// replaced with a fresh one, never merged.
// PRE: plan is non-nil and dayIdx addresses a schedule entry
// POST: The user's active session is the returned session, state is idle
func (e *Engine) Start(ctx context.Context, userID string, plan *workout.Plan, dayIdx int) (workout.Session, error) {
	if plan == nil {
		return workout.Session{}, workout.ErrNoPlan
	}
	day, ok := plan.DayByIndex(dayIdx)
	if !ok {
		return workout.Session{}, ErrNoPlanDay
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if existing, ok := e.deps.Workouts.Active(ctx, userID); ok {
		if existing.Source == workout.SourceAssigned && existing.Code == plan.Code {
			e.ensureRun(userID)
			return existing, nil
		}
		// stale session from another source or plan: replace
		slog.Info("workout_event", "event", "stale_session_replaced", "user_id", userID, "old_source", existing.Source)
	}

	sess, err := workout.NewAssignedSession(plan, day)
	if err != nil {
		return workout.Session{}, err
	}
	if err := e.deps.Workouts.SaveActive(ctx, userID, &sess); err != nil {
		return workout.Session{}, err
	}
	e.resetRun(userID)
	slog.Info("workout_event", "event", "session_started", "user_id", userID, "source", sess.Source, "plan_code", plan.Code)
	return sess, nil
}

// StartSelf creates (or resumes) a self-directed session from an ad-hoc
// exercise list. An existing assigned session is replaced, never merged.
func (e *Engine) StartSelf(ctx context.Context, userID, name string, exercises []workout.ExerciseSpec) (workout.Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if existing, ok := e.deps.Workouts.Active(ctx, userID); ok {
		if existing.Source == workout.SourceSelf {
			e.ensureRun(userID)
			return existing, nil
		}
		slog.Info("workout_event", "event", "stale_session_replaced", "user_id", userID, "old_source", existing.Source)
	}

	sess, err := workout.NewSelfSession(name, exercises)
	if err != nil {
		return workout.Session{}, err
	}
	if err := e.deps.Workouts.SaveActive(ctx, userID, &sess); err != nil {
		return workout.Session{}, err
	}
	e.resetRun(userID)
	slog.Info("workout_event", "event", "session_started", "user_id", userID, "source", sess.Source)
	return sess, nil
}

// Begin moves an idle session to running. StartTime is stamped only on the
// first explicit begin, so elapsed-time accounting starts when the user does.
func (e *Engine) Begin(ctx context.Context, userID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	sess, ok := e.deps.Workouts.Active(ctx, userID)
	if !ok {
		return ErrNoSession
	}
	if sess.StartTime == 0 {
		sess.StartTime = e.deps.Now().UnixMilli()
		if err := e.deps.Workouts.SaveActive(ctx, userID, &sess); err != nil {
			return err
		}
	}

	rs := e.ensureRun(userID)
	if rs.phase == StateRunning {
		return nil
	}
	rs.phase = StateRunning
	e.startElapsedTicker(rs)
	slog.Info("workout_event", "event", "session_begun", "user_id", userID)
	return nil
}

// Pause stops the elapsed ticker; no further elapsed ticks occur until
// Resume.
func (e *Engine) Pause(ctx context.Context, userID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	rs, ok := e.users[userID]
	if !ok || rs.phase != StateRunning {
		return ErrNotRunning
	}
	rs.phase = StatePaused
	stopTicker(&rs.ticker)
	return nil
}

// Resume restarts the elapsed ticker after a Pause.
func (e *Engine) Resume(ctx context.Context, userID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	rs, ok := e.users[userID]
	if !ok || rs.phase != StatePaused {
		return ErrNotRunning
	}
	rs.phase = StateRunning
	e.startElapsedTicker(rs)
	return nil
}

// ToggleSet flips a set's completion. Completing a set schedules a rest
// countdown for that set's configured rest time; un-completing performs no
// timer action. The countdown runs independently of session state and never
// blocks further edits.
func (e *Engine) ToggleSet(ctx context.Context, userID string, exIdx, setIdx int) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	sess, ok := e.deps.Workouts.Active(ctx, userID)
	if !ok {
		return false, ErrNoSession
	}
	completed, restSeconds, err := sess.ToggleSet(exIdx, setIdx)
	if err != nil {
		return false, err
	}
	if err := e.deps.Workouts.SaveActive(ctx, userID, &sess); err != nil {
		return false, err
	}
	if completed {
		rs := e.ensureRun(userID)
		e.scheduleRest(rs, restSeconds)
	}
	return completed, nil
}

// SetActual records performed reps and weight for one set.
func (e *Engine) SetActual(ctx context.Context, userID string, exIdx, setIdx, reps, weight int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	sess, ok := e.deps.Workouts.Active(ctx, userID)
	if !ok {
		return ErrNoSession
	}
	if err := sess.SetActual(exIdx, setIdx, reps, weight); err != nil {
		return err
	}
	return e.deps.Workouts.SaveActive(ctx, userID, &sess)
}

// Progress reports the fully-completed-exercise percentage of the active
// session, 0 when absent.
func (e *Engine) Progress(ctx context.Context, userID string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	sess, ok := e.deps.Workouts.Active(ctx, userID)
	if !ok {
		return 0
	}
	return sess.ProgressPercent()
}

// Complete stages the session's completion summary for confirmation. The
// elapsed ticker stops; the session document stays in place until Finish.
func (e *Engine) Complete(ctx context.Context, userID string) (Summary, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	sess, ok := e.deps.Workouts.Active(ctx, userID)
	if !ok {
		return Summary{}, ErrNoSession
	}

	rs := e.ensureRun(userID)
	rs.phase = StateCompleted
	stopTicker(&rs.ticker)

	elapsed := e.elapsedSeconds(rs, sess)
	return Summary{
		TotalVolume:     sess.TotalVolume(),
		DurationSeconds: elapsed,
		Duration:        workout.FormatTime(elapsed),
		ProgressPercent: sess.ProgressPercent(),
	}, nil
}

// Finish finalizes a completed session: appends exactly one immutable
// record, deletes the active session, and logs a present day plus streak
// recompute. After Finish no further mutation of this session is possible.
// PRE: Complete has been called; feeling is 1..5
func (e *Engine) Finish(ctx context.Context, userID string, feeling int, notes string) (workout.Record, error) {
	if feeling < 1 || feeling > 5 {
		return workout.Record{}, ErrInvalidFeeling
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	rs, ok := e.users[userID]
	if !ok || rs.phase != StateCompleted {
		return workout.Record{}, ErrNotCompleted
	}
	sess, ok := e.deps.Workouts.Active(ctx, userID)
	if !ok {
		return workout.Record{}, ErrNoSession
	}

	now := e.deps.Now()
	elapsed := e.elapsedSeconds(rs, sess)
	rec := workout.Record{
		ID:                 e.deps.GenerateID(),
		UserID:             userID,
		Date:               now.Format(time.RFC3339),
		RoutineName:        sess.Name,
		Duration:           workout.FormatTime(elapsed),
		CompletedExercises: sess.CompletedRecordExercises(),
	}
	if notes != "" {
		rec.MemberNotes = notes
		rec.NotesSavedAt = now.Format(time.RFC3339)
	}

	if err := e.deps.Workouts.AppendRecord(ctx, rec); err != nil {
		return workout.Record{}, err
	}
	if err := e.deps.Workouts.SaveActive(ctx, userID, nil); err != nil {
		return workout.Record{}, err
	}
	e.dropRun(userID)

	today := now.Format(attendance.DateLayout)
	if e.deps.Tracker != nil {
		if err := e.deps.Tracker.LogPresent(ctx, userID, today); err != nil {
			slog.Warn("workout_event", "event", "attendance_log_failed", "user_id", userID, "error", err)
		}
	}

	slog.Info("workout_event", "event", "session_finished", "user_id", userID,
		"routine", rec.RoutineName, "volume", sess.TotalVolume(), "feeling", feeling, "duration", rec.Duration)
	return rec, nil
}

// Cancel deletes the active session unconditionally and writes no record.
// The caller confirms with the user first when the session is not idle;
// discarding in-progress data is irreversible.
func (e *Engine) Cancel(ctx context.Context, userID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.deps.Workouts.SaveActive(ctx, userID, nil); err != nil {
		return err
	}
	e.dropRun(userID)
	slog.Info("workout_event", "event", "session_canceled", "user_id", userID)
	return nil
}

// Elapsed reports the accumulated running seconds for a user's session.
func (e *Engine) Elapsed(userID string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rs, ok := e.users[userID]; ok {
		return rs.elapsed
	}
	return 0
}

// Close stops every timer. The engine is not usable afterwards.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	for userID, rs := range e.users {
		stopTicker(&rs.ticker)
		e.stopRest(rs)
		delete(e.users, userID)
	}
}

// elapsedSeconds prefers ticker-accumulated time; after a process restart
// the counter is empty, so fall back to wall time since the explicit begin.
func (e *Engine) elapsedSeconds(rs *runState, sess workout.Session) int {
	if rs.elapsed > 0 || sess.StartTime == 0 {
		return rs.elapsed
	}
	return int(e.deps.Now().UnixMilli()-sess.StartTime) / 1000
}

// ensureRun returns the user's run state, creating an idle one if needed.
// Callers hold e.mu.
func (e *Engine) ensureRun(userID string) *runState {
	rs, ok := e.users[userID]
	if !ok {
		rs = &runState{phase: StateIdle}
		e.users[userID] = rs
	}
	return rs
}

// resetRun discards any prior run state and timers for the user.
// Callers hold e.mu.
func (e *Engine) resetRun(userID string) {
	e.dropRun(userID)
	e.users[userID] = &runState{phase: StateIdle}
}

// dropRun removes the user's run state, stopping its timers.
// Callers hold e.mu.
func (e *Engine) dropRun(userID string) {
	if rs, ok := e.users[userID]; ok {
		stopTicker(&rs.ticker)
		e.stopRest(rs)
		delete(e.users, userID)
	}
}
