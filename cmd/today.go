package main

import (
	"context"
	"fmt"
	"studytracker/internal/config"
	"studytracker/internal/progress"
	"studytracker/pkg/domain"
	"studytracker/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// todayCommand constructs the 'today' subcommand that prints the dashboard
// numbers of the current day.
func todayCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Prints today's study time, focus score and streak",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			rawUserID, _ := cmd.Flags().GetString("user")
			if rawUserID == "" {
				rawUserID = cfg.User.DefaultID
			}
			userID, err := uuid.Parse(rawUserID)
			if err != nil {
				logger.Fatal(ctx, "invalid user id", zap.String("user", rawUserID), zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			options, err := progress.NewOptions(cfg)
			if err != nil {
				logger.Fatal(ctx, "invalid progress options", zap.Error(err))
			}

			stats, err := progress.New(strg, options).TodayStats(ctx, domain.UserID(userID))
			if err != nil {
				logger.Fatal(ctx, "could not load today stats", zap.Error(err))
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Study time:   %s (%s)\n",
				progress.FormatDuration(stats.TotalTime),
				progress.FormatClock(stats.TotalTime))
			_, _ = fmt.Fprintf(out, "Sessions:     %d\n", stats.SessionsCount)
			_, _ = fmt.Fprintf(out, "Focus score:  %d%%\n", stats.AvgFocusScore)
			_, _ = fmt.Fprintf(out, "Tasks done:   %d\n", stats.CompletedTasks)
			_, _ = fmt.Fprintf(out, "Streak:       %d days\n", stats.Streak)
		},
	}
	cmd.Flags().String("user", "", "User ID, the configured default user when empty")

	return cmd
}
