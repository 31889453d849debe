// Package timer runs the pomodoro timer: study and break phases counted in
// one second ticks, periodic focus checks and saving finished study phases as
// sessions. The state survives restarts through a bbolt snapshot.
package timer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"studytracker/internal/config"
	"studytracker/internal/study"
	"studytracker/pkg/domain"
	"studytracker/pkg/logger"
	"studytracker/pkg/metrics"
	"studytracker/pkg/serrors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	phaseStudy = "study"
	phaseBreak = "break"

	defaultCheckIntervalMinutes = 15
	defaultSaveTimeout          = 10 * time.Second
)

// Options configure the timer.
type Options struct {
	// UserID owns the saved sessions.
	UserID domain.UserID

	PomodoroMinutes      int
	BreakMinutes         int
	CheckIntervalMinutes int

	// TickInterval is the wall clock period of Run.
	TickInterval time.Duration
	// SaveTimeout bounds storing a finished session.
	SaveTimeout time.Duration
	// Now defaults to time.Now.
	Now func() time.Time
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) (Options, error) {
	userID, err := uuid.Parse(cfg.User.DefaultID)
	if err != nil {
		return Options{}, fmt.Errorf("invalid default user id: %w", err)
	}

	return Options{
		UserID:               domain.UserID(userID),
		PomodoroMinutes:      cfg.Timer.PomodoroMinutes,
		BreakMinutes:         cfg.Timer.BreakMinutes,
		CheckIntervalMinutes: cfg.Timer.CheckIntervalMinutes,
		TickInterval:         cfg.Timer.TickInterval,
		SaveTimeout:          cfg.Timer.SaveTimeout,
		Now:                  time.Now,
	}, nil
}

type timer struct {
	mu     sync.Mutex
	state  State
	saving bool

	options Options
	study   study.Study
	store   Store
}

// New restores the timer from store, falling back to an idle timer with the
// configured lengths.
func New(ctx context.Context, options Options, study study.Study, store Store) (Timer, error) {
	if options.Now == nil {
		options.Now = time.Now
	}
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.PomodoroMinutes <= 0 {
		options.PomodoroMinutes = domain.DefaultStudyMinutes
	}
	if options.BreakMinutes <= 0 {
		options.BreakMinutes = domain.DefaultBreakMinutes
	}
	if options.CheckIntervalMinutes <= 0 {
		options.CheckIntervalMinutes = defaultCheckIntervalMinutes
	}
	if options.SaveTimeout <= 0 {
		options.SaveTimeout = defaultSaveTimeout
	}

	t := &timer{
		options: options,
		study:   study,
		store:   store,
	}

	saved, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not restore timer: %w", err)
	}
	if saved != nil {
		t.state = *saved
		logger.Info(ctx, "timer restored",
			zap.Int("elapsed", saved.Elapsed),
			zap.Bool("running", saved.Running),
			zap.Bool("break", saved.Break))
	} else {
		t.state = t.idle()
	}

	return t, nil
}

// idle returns a cleared state with the configured lengths.
func (t *timer) idle() State {
	return State{
		PomodoroMinutes:      t.options.PomodoroMinutes,
		BreakMinutes:         t.options.BreakMinutes,
		CheckIntervalMinutes: t.options.CheckIntervalMinutes,
	}
}

// persist stores the current state. Must be called with mu held.
func (t *timer) persist(ctx context.Context) {
	if err := t.store.Save(ctx, t.state); err != nil {
		logger.Error(ctx, "could not persist timer state", zap.Error(err))
	}
}

func (t *timer) Status(_ context.Context) Status {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.state.status(t.saving)
}

func (t *timer) Configure(ctx context.Context, settings Settings) (Status, error) {
	for _, v := range []*int{settings.PomodoroMinutes, settings.BreakMinutes, settings.CheckIntervalMinutes} {
		if v != nil && *v <= 0 {
			return Status{}, serrors.BadRequest("lengths must be positive")
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if settings.Subject != nil {
		t.state.Subject = strings.TrimSpace(*settings.Subject)
	}
	if settings.Topic != nil {
		t.state.Topic = strings.TrimSpace(*settings.Topic)
	}
	if settings.PomodoroMinutes != nil {
		t.state.PomodoroMinutes = *settings.PomodoroMinutes
	}
	if settings.BreakMinutes != nil {
		t.state.BreakMinutes = *settings.BreakMinutes
	}
	if settings.CheckIntervalMinutes != nil {
		t.state.CheckIntervalMinutes = *settings.CheckIntervalMinutes
	}
	t.persist(ctx)

	return t.state.status(t.saving), nil
}

func (t *timer) Start(ctx context.Context) (Status, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state.Subject == "" {
		return Status{}, serrors.BadRequest("subject is required")
	}
	if t.saving {
		return Status{}, serrors.With(serrors.ErrConflict, "session is being saved")
	}

	now := t.options.Now()
	t.state.StartTime = &now
	t.state.Running = true
	t.state.LastCheck = 0
	t.persist(ctx)

	logger.Info(ctx, "timer started", zap.String("subject", t.state.Subject), zap.Bool("break", t.state.Break))

	return t.state.status(t.saving), nil
}

func (t *timer) Pause(ctx context.Context) (Status, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.state.Running = false
	t.persist(ctx)

	return t.state.status(t.saving), nil
}

func (t *timer) RespondFocus(ctx context.Context, focused bool) (Status, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.state.FocusChecks) == 0 {
		return Status{}, serrors.BadRequest("no focus check to answer")
	}

	t.state.FocusChecks[len(t.state.FocusChecks)-1].Answer = &focused
	t.state.ShowFocusCheck = false
	t.persist(ctx)

	return t.state.status(t.saving), nil
}

func (t *timer) Tick(ctx context.Context) error {
	t.mu.Lock()
	if !t.state.Running || t.saving {
		t.mu.Unlock()

		return nil
	}

	t.state.Elapsed++
	if !t.state.Break && t.state.Elapsed-t.state.LastCheck >= t.state.CheckIntervalMinutes*60 {
		t.state.LastCheck = t.state.Elapsed
		t.state.FocusChecks = append(t.state.FocusChecks, FocusCheck{Offset: t.state.Elapsed})
		t.state.ShowFocusCheck = true
		logger.Info(ctx, "focus check", zap.Int("elapsed", t.state.Elapsed), zap.String("subject", t.state.Subject))
	}

	if t.state.Elapsed < t.state.target() {
		t.persist(ctx)
		t.mu.Unlock()

		return nil
	}

	t.state.Running = false
	if t.state.Break {
		metrics.TimerCycleCompleted(phaseBreak)
		logger.Info(ctx, "break is over")

		t.state.Break = false
		t.state.Elapsed = 0
		t.state.LastCheck = 0
		t.persist(ctx)
		t.mu.Unlock()

		return nil
	}

	metrics.TimerCycleCompleted(phaseStudy)
	logger.Info(ctx, "pomodoro completed", zap.String("subject", t.state.Subject))

	input, ok := t.beginSave()
	t.mu.Unlock()
	if !ok {
		return nil
	}

	err := t.save(ctx, input, func() {
		t.state.Break = true
		t.state.Elapsed = 0
		t.state.FocusChecks = nil
		t.state.LastCheck = 0
		t.state.ShowFocusCheck = false
	})
	if err != nil {
		return fmt.Errorf("could not save completed pomodoro: %w", err)
	}

	return nil
}

func (t *timer) Stop(ctx context.Context) (Status, error) {
	t.mu.Lock()
	if t.saving {
		t.mu.Unlock()

		return Status{}, serrors.With(serrors.ErrConflict, "session is being saved")
	}

	t.state.Running = false
	if t.state.Elapsed == 0 || t.state.StartTime == nil || t.state.Break {
		t.state.Elapsed = 0
		t.state.Break = false
		t.state.FocusChecks = nil
		t.state.LastCheck = 0
		t.state.ShowFocusCheck = false
		t.persist(ctx)
		status := t.state.status(t.saving)
		t.mu.Unlock()

		return status, nil
	}

	input, _ := t.beginSave()
	t.mu.Unlock()

	if err := t.save(ctx, input, func() {
		t.state = State{
			PomodoroMinutes:      t.state.PomodoroMinutes,
			BreakMinutes:         t.state.BreakMinutes,
			CheckIntervalMinutes: t.state.CheckIntervalMinutes,
		}
	}); err != nil {
		return Status{}, err
	}

	return t.Status(ctx), nil
}

// beginSave marks the timer as saving and builds the session to store. It
// reports false when a save is already in progress. Must be called with mu held.
func (t *timer) beginSave() (study.SessionInput, bool) {
	if t.saving {
		return study.SessionInput{}, false
	}
	t.saving = true

	start := *t.state.StartTime
	end := t.options.Now()
	duration := t.state.Elapsed

	checks := make([]study.FocusCheckInput, 0, len(t.state.FocusChecks))
	for _, c := range t.state.FocusChecks {
		ts := start.Add(time.Duration(c.Offset) * time.Second)
		checks = append(checks, study.FocusCheckInput{
			WasFocused: c.Answer != nil && *c.Answer,
			Timestamp:  &ts,
		})
	}

	return study.SessionInput{
		Subject:      t.state.Subject,
		Topic:        t.state.Topic,
		StartTime:    start,
		EndTime:      &end,
		Duration:     &duration,
		StudyMinutes: t.state.PomodoroMinutes,
		BreakMinutes: t.state.BreakMinutes,
		FocusChecks:  checks,
		Source:       metrics.SourceTimer,
	}, true
}

// save stores input outside the lock and applies onSuccess once it is stored.
// A failed save leaves the state untouched.
func (t *timer) save(ctx context.Context, input study.SessionInput, onSuccess func()) error {
	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), t.options.SaveTimeout)
	defer cancel()

	session, err := t.study.CreateSession(saveCtx, t.options.UserID, input)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.saving = false

	if err != nil {
		logger.Error(ctx, "could not save timer session", zap.Error(err))
		t.persist(ctx)

		return fmt.Errorf("could not save session: %w", err)
	}

	logger.Info(ctx, "timer session saved",
		zap.Stringer("sessionID", session.ID),
		zap.Int("duration", session.Seconds()))
	onSuccess()
	t.persist(ctx)

	return nil
}

// Run ticks every TickInterval until ctx is done. A failed tick is logged and
// the timer keeps going.
func (t *timer) Run(ctx context.Context) error {
	ticker := time.NewTicker(t.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}

			return ctx.Err()
		case <-ticker.C:
			if err := t.Tick(ctx); err != nil {
				logger.Error(ctx, "timer tick failed", zap.Error(err))
			}
		}
	}
}
