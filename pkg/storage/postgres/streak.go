package postgres

import (
	"context"
	"fmt"
	"studytracker/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

func (p *PgSQL) StreakByUser(ctx context.Context, userID domain.UserID) (*domain.Streak, error) {
	var row PgStreak
	found, err := p.Builder.From(streaksTable).
		Where(goqu.I("user_id").Eq(uuid.UUID(userID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch streak: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpsertStreak inserts the row or overwrites the counters and last study date
// of an existing one.
func (p *PgSQL) UpsertStreak(ctx context.Context, streak domain.Streak) (*domain.Streak, error) {
	var result PgStreak
	if _, err := p.Builder.Insert(streaksTable).
		Rows(PgStreak{
			UserID:        uuid.UUID(streak.UserID),
			CurrentStreak: streak.CurrentStreak,
			LongestStreak: streak.LongestStreak,
			LastStudyDate: nullTime(streak.LastStudyDate),
		}).
		OnConflict(goqu.DoUpdate("user_id", goqu.Record{
			"current_streak":  goqu.L("EXCLUDED.current_streak"),
			"longest_streak":  goqu.L("EXCLUDED.longest_streak"),
			"last_study_date": goqu.L("EXCLUDED.last_study_date"),
			"updated_at":      goqu.L("CURRENT_TIMESTAMP"),
		})).
		Returning(&PgStreak{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not upsert streak into pg: %w", err)
	}

	return result.ToDomain(), nil
}
