package screening

import (
	"testing"
	"time"

	"BloodBank-API/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextEligibleDate(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	record := func(daysAgo int, status, component string) domain.DonationHistoryRecord {
		return domain.DonationHistoryRecord{
			DonationDate: now.AddDate(0, 0, -daysAgo),
			Status:       status,
			Component:    component,
		}
	}

	t.Run("empty history is eligible now with no next date", func(t *testing.T) {
		schedule := NextEligibleDate(nil, now)
		assert.True(t, schedule.IsEligibleNow)
		assert.Nil(t, schedule.NextDate)
		assert.Zero(t, schedule.WaitingPeriodDays)
	})

	t.Run("whole blood donation inside 56 days blocks", func(t *testing.T) {
		schedule := NextEligibleDate([]domain.DonationHistoryRecord{
			record(30, domain.DonationStatusCompleted, "Whole Blood"),
		}, now)
		require.NotNil(t, schedule.NextDate)
		assert.False(t, schedule.IsEligibleNow)
		assert.Equal(t, 56, schedule.WaitingPeriodDays)
		assert.Equal(t, now.AddDate(0, 0, -30).AddDate(0, 0, 56), *schedule.NextDate)
	})

	t.Run("whole blood donation past 56 days is eligible again", func(t *testing.T) {
		schedule := NextEligibleDate([]domain.DonationHistoryRecord{
			record(56, domain.DonationStatusCompleted, "Whole Blood"),
		}, now)
		assert.True(t, schedule.IsEligibleNow)
		require.NotNil(t, schedule.NextDate)
	})

	t.Run("rejected and cancelled donations never count", func(t *testing.T) {
		schedule := NextEligibleDate([]domain.DonationHistoryRecord{
			record(1, domain.DonationStatusRejected, "Whole Blood"),
			record(2, domain.DonationStatusCancelled, "Whole Blood"),
			record(3, domain.DonationStatusPending, "Whole Blood"),
		}, now)
		assert.True(t, schedule.IsEligibleNow)
		assert.Nil(t, schedule.NextDate)
	})

	t.Run("approved donations count like completed ones", func(t *testing.T) {
		schedule := NextEligibleDate([]domain.DonationHistoryRecord{
			record(10, domain.DonationStatusApproved, "Whole Blood"),
		}, now)
		assert.False(t, schedule.IsEligibleNow)
	})

	t.Run("component-specific intervals", func(t *testing.T) {
		cases := []struct {
			component string
			days      int
		}{
			{"Whole Blood", 56},
			{"Red Cells", 56},
			{"Plasma", 28},
			{"Platelets", 7},
			{"White Cells", 56},
			{"Cryoprecipitate", 56}, // unknown falls back to whole blood
		}
		for _, c := range cases {
			schedule := NextEligibleDate([]domain.DonationHistoryRecord{
				record(1, domain.DonationStatusCompleted, c.component),
			}, now)
			assert.Equal(t, c.days, schedule.WaitingPeriodDays, c.component)
		}
	})

	t.Run("only the latest qualifying donation sets the period", func(t *testing.T) {
		schedule := NextEligibleDate([]domain.DonationHistoryRecord{
			record(100, domain.DonationStatusCompleted, "Whole Blood"),
			record(3, domain.DonationStatusCompleted, "Platelets"),
			record(1, domain.DonationStatusRejected, "Whole Blood"),
		}, now)
		assert.Equal(t, 7, schedule.WaitingPeriodDays)
		require.NotNil(t, schedule.NextDate)
		assert.Equal(t, now.AddDate(0, 0, -3).AddDate(0, 0, 7), *schedule.NextDate)
	})

	t.Run("same-day records tie-break on the strictly greater timestamp", func(t *testing.T) {
		morning := domain.DonationHistoryRecord{
			DonationDate: time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC),
			Status:       domain.DonationStatusCompleted,
			Component:    "Plasma",
		}
		evening := domain.DonationHistoryRecord{
			DonationDate: time.Date(2025, 5, 20, 18, 0, 0, 0, time.UTC),
			Status:       domain.DonationStatusCompleted,
			Component:    "Platelets",
		}
		schedule := NextEligibleDate([]domain.DonationHistoryRecord{morning, evening}, now)
		assert.Equal(t, 7, schedule.WaitingPeriodDays)

		reversed := NextEligibleDate([]domain.DonationHistoryRecord{evening, morning}, now)
		assert.Equal(t, schedule, reversed)
	})
}
