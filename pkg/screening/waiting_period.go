package screening

import (
	"time"

	"BloodBank-API/domain"
)

// DefaultWaitingPeriodDays is the whole-blood interval; unknown components
// fall back to it.
const DefaultWaitingPeriodDays = 56

// waitingPeriodDays is the canonical component-keyed interval table.
var waitingPeriodDays = map[string]int{
	"Whole Blood": 56,
	"Red Cells":   56,
	"Plasma":      28,
	"Platelets":   7,
	"White Cells": 56,
}

// WaitingPeriodFor returns the minimum interval in days before the next
// donation of the given component.
func WaitingPeriodFor(component string) int {
	if days, ok := waitingPeriodDays[component]; ok {
		return days
	}
	return DefaultWaitingPeriodDays
}

// NextEligibleDate computes when a donor may donate again based on recency
// alone. Only Completed and Approved records count; rejected and cancelled
// attempts never delay the next donation. The waiting period is always taken
// from the single latest qualifying donation, never accumulated. An empty or
// non-qualifying history means the donor is eligible now with no next date.
//
// Recency eligibility is independent of health screening; callers combine
// both through the service's CanDonate.
func NextEligibleDate(history []domain.DonationHistoryRecord, now time.Time) domain.DonationSchedule {
	var latest *domain.DonationHistoryRecord
	for i := range history {
		record := &history[i]
		if record.Status != domain.DonationStatusCompleted && record.Status != domain.DonationStatusApproved {
			continue
		}
		// Strictly-greatest timestamp wins; equal timestamps keep the
		// first seen, which yields the same schedule either way.
		if latest == nil || record.DonationDate.After(latest.DonationDate) {
			latest = record
		}
	}

	if latest == nil {
		return domain.DonationSchedule{IsEligibleNow: true}
	}

	days := WaitingPeriodFor(latest.Component)
	nextDate := latest.DonationDate.AddDate(0, 0, days)
	return domain.DonationSchedule{
		IsEligibleNow:     !now.Before(nextDate),
		NextDate:          &nextDate,
		WaitingPeriodDays: days,
	}
}
