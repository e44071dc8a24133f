package usecase_test

import (
	"time"

	"github.com/runoshun/issue-reporter/internal/testutil"
)

var testNow = time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC)

func newClock() *testutil.MockClock {
	return &testutil.MockClock{NowTime: testNow}
}
