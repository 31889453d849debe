package study_test

import (
	"context"
	"studytracker/internal/study"
	"studytracker/pkg/domain"
	"studytracker/pkg/storage"
	mockstorage "studytracker/pkg/storage/mock"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

var (
	testNow  = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	testUser = domain.UserID(uuid.MustParse("00000000-0000-0000-0000-000000000001"))
)

func newTestStudy(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, study.Study) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	s := study.New(st, study.Options{
		MaxAttempts: 3,
		Now:         func() time.Time { return testNow },
	})

	return ctrl, st, s
}

// expectWithTx wires Storage.WithTx to run the callback against a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func strPtr(s string) *string { return &s }
