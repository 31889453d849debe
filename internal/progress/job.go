package progress

import (
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// StreakJobArgs asks the worker to recalculate a user's streak after a
// session has been completed.
type StreakJobArgs struct {
	UserID string `json:"user_id" river:"unique"`

	maxAttempts int
}

// NewStreakJob builds the job args for userID.
func NewStreakJob(userID string, maxAttempts int) StreakJobArgs {
	return StreakJobArgs{UserID: userID, maxAttempts: maxAttempts}
}

// Kind returns the River job kind used to register and dispatch the streak worker.
func (args StreakJobArgs) Kind() string { return "UpdateStreakJob" }

// InsertOpts collapses jobs for the same user that are still waiting to run.
func (args StreakJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
