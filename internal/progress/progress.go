// Package progress computes dashboard statistics, analytics and study streaks
// from stored sessions. Day boundaries are taken in the configured location.
package progress

import (
	"context"
	"fmt"
	"math"
	"sort"
	"studytracker/internal/config"
	"studytracker/pkg/domain"
	"studytracker/pkg/serrors"
	"studytracker/pkg/storage"
	"time"
)

const (
	// streakLookbackDays bounds the walk of CalculateStreak.
	streakLookbackDays = 30
	// streakSessionSample is how many recent sessions CalculateStreak inspects.
	streakSessionSample = 100
	bestStudyTimesCount = 3
)

// Options configure clock and time zone.
type Options struct {
	Location *time.Location
	// Now defaults to time.Now.
	Now func() time.Time
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) (Options, error) {
	loc, err := cfg.Location()
	if err != nil {
		return Options{}, err
	}

	return Options{Location: loc, Now: time.Now}, nil
}

type progress struct {
	options Options
	storage storage.Storage
}

// New creates a Progress backed by storage.
func New(storage storage.Storage, options Options) Progress {
	if options.Location == nil {
		options.Location = time.UTC
	}
	if options.Now == nil {
		options.Now = time.Now
	}

	return &progress{
		options: options,
		storage: storage,
	}
}

func (p progress) now() time.Time {
	return p.options.Now().In(p.options.Location)
}

func (p progress) startOfDay(t time.Time) time.Time {
	y, m, d := t.In(p.options.Location).Date()

	return time.Date(y, m, d, 0, 0, 0, 0, p.options.Location)
}

// withFocusChecks attaches the focus checks of every session.
func (p progress) withFocusChecks(ctx context.Context, sessions []domain.StudySession) error {
	if len(sessions) == 0 {
		return nil
	}

	ids := make([]domain.SessionID, 0, len(sessions))
	for _, s := range sessions {
		ids = append(ids, s.ID)
	}

	checks, err := p.storage.SessionFocusChecks(ctx, ids...)
	if err != nil {
		return fmt.Errorf("could not get focus checks: %w", err)
	}

	bySession := make(map[domain.SessionID][]domain.FocusCheck, len(sessions))
	for _, c := range checks {
		bySession[c.SessionID] = append(bySession[c.SessionID], c)
	}
	for i := range sessions {
		sessions[i].FocusChecks = bySession[sessions[i].ID]
	}

	return nil
}

// TodayStats summarises today's completed sessions and completed tasks.
func (p progress) TodayStats(ctx context.Context, userID domain.UserID) (*domain.TodayStats, error) {
	start := p.startOfDay(p.now())
	end := start.AddDate(0, 0, 1)

	sessions, err := p.storage.UserSessions(ctx, userID, storage.SessionFilter{
		From:          start,
		To:            end,
		CompletedOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("could not get today's sessions: %w", err)
	}
	if err := p.withFocusChecks(ctx, sessions); err != nil {
		return nil, err
	}

	var (
		total  int
		checks []domain.FocusCheck
	)
	for _, s := range sessions {
		total += s.Seconds()
		checks = append(checks, s.FocusChecks...)
	}

	completedTasks, err := p.storage.CompletedTaskCount(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("could not count completed tasks: %w", err)
	}

	streak, err := p.CalculateStreak(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &domain.TodayStats{
		TotalTime:      total,
		SessionsCount:  len(sessions),
		AvgFocusScore:  FocusScore(checks),
		CompletedTasks: completedTasks,
		Streak:         streak,
	}, nil
}

// CalculateStreak counts consecutive days with a completed session, walking
// back from today. Today may still be empty without breaking the streak.
func (p progress) CalculateStreak(ctx context.Context, userID domain.UserID) (int, error) {
	sessions, err := p.storage.UserSessions(ctx, userID, storage.SessionFilter{
		CompletedOnly: true,
		Limit:         streakSessionSample,
	})
	if err != nil {
		return 0, fmt.Errorf("could not get recent sessions: %w", err)
	}

	days := make(map[time.Time]struct{}, len(sessions))
	for _, s := range sessions {
		days[p.startOfDay(s.StartTime)] = struct{}{}
	}

	streak := 0
	today := p.startOfDay(p.now())
	for i := 0; i < streakLookbackDays; i++ {
		if _, ok := days[today.AddDate(0, 0, -i)]; ok {
			streak++
		} else if i > 0 {
			break
		}
	}

	return streak, nil
}

// rangeStart resolves the look-back window of Analytics.
func rangeStart(now time.Time, rng domain.AnalyticsRange) (time.Time, bool) {
	switch rng {
	case domain.AnalyticsRangeWeek:
		return now.AddDate(0, 0, -7), true
	case domain.AnalyticsRangeMonth:
		return now.AddDate(0, -1, 0), true
	case domain.AnalyticsRangeYear:
		return now.AddDate(-1, 0, 0), true
	default:
		return time.Time{}, false
	}
}

type aggregate struct {
	duration   int
	focusTotal float64
	count      int
}

func (a aggregate) avgFocus() int {
	if a.count == 0 {
		return 0
	}

	return int(math.Round(a.focusTotal / float64(a.count)))
}

// sessionFocus is the unrounded focus percentage of a single session.
func sessionFocus(s domain.StudySession) float64 {
	if len(s.FocusChecks) == 0 {
		return 0
	}

	focused := 0
	for _, c := range s.FocusChecks {
		if c.WasFocused {
			focused++
		}
	}

	return float64(focused) / float64(len(s.FocusChecks)) * 100
}

// Analytics aggregates completed sessions started within rng. An empty rng
// means a week.
func (p progress) Analytics(ctx context.Context, userID domain.UserID, rng string) (*domain.Analytics, error) {
	r := domain.AnalyticsRange(rng)
	if r == "" {
		r = domain.AnalyticsRangeWeek
	}

	now := p.now()
	from, ok := rangeStart(now, r)
	if !ok {
		return nil, serrors.BadRequest("invalid range %q: expected week, month or year", rng)
	}

	sessions, err := p.storage.UserSessions(ctx, userID, storage.SessionFilter{
		From:          from,
		To:            now.Add(time.Nanosecond),
		CompletedOnly: true,
		Ascending:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("could not get sessions in range: %w", err)
	}
	if err := p.withFocusChecks(ctx, sessions); err != nil {
		return nil, err
	}

	res := &domain.Analytics{
		Range:          r,
		SessionsCount:  len(sessions),
		SubjectStats:   []domain.SubjectStats{},
		DailyData:      map[string]int{},
		BestStudyTimes: []domain.HourStats{},
	}

	var (
		checks       []domain.FocusCheck
		subjectOrder []string
		bySubject    = map[string]*aggregate{}
		byHour       = map[int]*aggregate{}
	)
	for _, s := range sessions {
		seconds := s.Seconds()
		focus := sessionFocus(s)
		start := s.StartTime.In(p.options.Location)

		res.TotalTime += seconds
		checks = append(checks, s.FocusChecks...)
		res.DailyData[start.Format(time.DateOnly)] += seconds

		sub, ok := bySubject[s.Subject]
		if !ok {
			sub = &aggregate{}
			bySubject[s.Subject] = sub
			subjectOrder = append(subjectOrder, s.Subject)
		}
		sub.duration += seconds
		sub.focusTotal += focus
		sub.count++

		h, ok := byHour[start.Hour()]
		if !ok {
			h = &aggregate{}
			byHour[start.Hour()] = h
		}
		h.duration += seconds
		h.focusTotal += focus
		h.count++
	}
	res.AvgFocusScore = FocusScore(checks)

	for _, name := range subjectOrder {
		a := bySubject[name]
		res.SubjectStats = append(res.SubjectStats, domain.SubjectStats{
			Subject:       name,
			Duration:      a.duration,
			AvgFocusScore: a.avgFocus(),
			SessionsCount: a.count,
		})
	}
	sort.SliceStable(res.SubjectStats, func(i, j int) bool {
		return res.SubjectStats[i].Duration > res.SubjectStats[j].Duration
	})

	for hour, a := range byHour {
		res.BestStudyTimes = append(res.BestStudyTimes, domain.HourStats{
			Hour:          hour,
			TimeOfDay:     domain.TimeOfDayForHour(hour),
			AvgFocusScore: a.avgFocus(),
			TotalDuration: a.duration,
		})
	}
	sort.Slice(res.BestStudyTimes, func(i, j int) bool {
		a, b := res.BestStudyTimes[i], res.BestStudyTimes[j]
		if a.AvgFocusScore != b.AvgFocusScore {
			return a.AvgFocusScore > b.AvgFocusScore
		}

		return a.Hour < b.Hour
	})
	if len(res.BestStudyTimes) > bestStudyTimesCount {
		res.BestStudyTimes = res.BestStudyTimes[:bestStudyTimesCount]
	}

	return res, nil
}

// studyStats summarises all sessions started within [from, to].
func (p progress) studyStats(ctx context.Context, userID domain.UserID, from, to time.Time) (domain.StudyStats, error) {
	sessions, err := p.storage.UserSessions(ctx, userID, storage.SessionFilter{
		From: from,
		To:   to.Add(time.Nanosecond),
	})
	if err != nil {
		return domain.StudyStats{}, fmt.Errorf("could not get sessions: %w", err)
	}

	type subjectKey struct {
		id   domain.SubjectID
		name string
	}

	var (
		total int
		order []subjectKey
		sums  = map[subjectKey]int{}
		ids   = map[subjectKey]*domain.SubjectID{}
		names = map[subjectKey]string{}
	)
	for _, s := range sessions {
		total += s.Seconds()

		key := subjectKey{name: s.Subject}
		if s.SubjectID != nil {
			key = subjectKey{id: *s.SubjectID}
		}
		if _, ok := sums[key]; !ok {
			order = append(order, key)
			ids[key] = s.SubjectID
			names[key] = s.Subject
		}
		sums[key] += s.Seconds()
	}

	stats := domain.StudyStats{
		TotalHours:       roundTenth(float64(total) / 3600),
		SessionsCount:    len(sessions),
		SubjectBreakdown: make([]domain.SubjectHours, 0, len(order)),
	}
	if len(sessions) > 0 {
		stats.AverageSessionDuration = int(math.Round(float64(total) / 60 / float64(len(sessions))))
	}
	for _, key := range order {
		stats.SubjectBreakdown = append(stats.SubjectBreakdown, domain.SubjectHours{
			SubjectID:   ids[key],
			SubjectName: names[key],
			Hours:       roundTenth(float64(sums[key]) / 3600),
		})
	}

	return stats, nil
}

// streak returns the stored streak of userID, creating an empty one on first
// access.
func (p progress) streak(ctx context.Context, st storage.AllStorage, userID domain.UserID) (*domain.Streak, error) {
	streak, err := st.StreakByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get streak: %w", err)
	}
	if streak != nil {
		return streak, nil
	}

	streak, err = st.UpsertStreak(ctx, domain.Streak{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("could not create streak: %w", err)
	}

	return streak, nil
}

// Progress returns the stored streak with weekly and monthly summaries.
func (p progress) Progress(ctx context.Context, userID domain.UserID) (*domain.Progress, error) {
	streak, err := p.streak(ctx, p.storage, userID)
	if err != nil {
		return nil, err
	}

	now := p.now()
	weekly, err := p.studyStats(ctx, userID, now.Add(-7*24*time.Hour), now)
	if err != nil {
		return nil, err
	}
	monthly, err := p.studyStats(ctx, userID, now.Add(-30*24*time.Hour), now)
	if err != nil {
		return nil, err
	}

	return &domain.Progress{
		Streak:       *streak,
		WeeklyStats:  weekly,
		MonthlyStats: monthly,
	}, nil
}

// UpdateStreak advances the stored streak for a study day. Studying again on
// the same calendar day changes nothing, the next day extends the streak and
// any longer gap restarts it at 1.
func (p progress) UpdateStreak(ctx context.Context, userID domain.UserID) (*domain.Streak, error) {
	var updated *domain.Streak
	if err := p.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		streak, err := p.streak(ctx, tx, userID)
		if err != nil {
			return err
		}

		now := p.now()
		today := p.startOfDay(now)
		next := *streak
		next.LastStudyDate = &now

		switch {
		case streak.LastStudyDate == nil:
			next.CurrentStreak = 1
		case p.startOfDay(*streak.LastStudyDate).Equal(today):
			updated = streak

			return nil
		case p.startOfDay(*streak.LastStudyDate).AddDate(0, 0, 1).Equal(today):
			next.CurrentStreak = streak.CurrentStreak + 1
		default:
			next.CurrentStreak = 1
		}
		next.LongestStreak = max(next.LongestStreak, next.CurrentStreak)

		updated, err = tx.UpsertStreak(ctx, next)
		if err != nil {
			return fmt.Errorf("could not update streak: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not run streak tx: %w", err)
	}

	return updated, nil
}
