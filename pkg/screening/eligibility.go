package screening

import (
	"BloodBank-API/domain"
)

// Screening thresholds for a single donation attempt.
const (
	MinWeightKg    = 45.0
	MinSystolic    = 90.0
	MaxSystolic    = 160.0
	MinDiastolic   = 60.0
	MaxDiastolic   = 100.0
	MinTemperature = 36.0
	MaxTemperature = 37.5
	MinHemoglobin  = 12.5
	MinPulse       = 60.0
	MaxPulse       = 100.0
)

// Evaluate applies every screening predicate to the submitted answers. All
// predicates must hold for an eligible decision; there is no partial credit.
// The decision always carries the complete list of failed criteria, not just
// the first, so the screening UI can show actionable feedback. Zero-valued
// vitals (absent input) fail their range checks. Pure function.
func Evaluate(answers domain.HealthCheckAnswers) domain.EligibilityDecision {
	var failed []string

	if answers.WeightKg < MinWeightKg {
		failed = append(failed, domain.ReasonLowWeight)
	}
	if answers.Systolic < MinSystolic || answers.Systolic > MaxSystolic ||
		answers.Diastolic < MinDiastolic || answers.Diastolic > MaxDiastolic {
		failed = append(failed, domain.ReasonBloodPressure)
	}
	if answers.Temperature < MinTemperature || answers.Temperature > MaxTemperature {
		failed = append(failed, domain.ReasonTemperature)
	}
	if answers.Hemoglobin < MinHemoglobin {
		failed = append(failed, domain.ReasonLowHemoglobin)
	}
	if answers.Pulse < MinPulse || answers.Pulse > MaxPulse {
		failed = append(failed, domain.ReasonPulse)
	}
	if answers.IsCurrentlySick {
		failed = append(failed, domain.ReasonCurrentlySick)
	}
	if answers.HasInfectiousDiseases {
		failed = append(failed, domain.ReasonInfectiousDiseases)
	}
	if answers.HasRecentProcedures {
		failed = append(failed, domain.ReasonRecentProcedures)
	}
	if !answers.IsFeelingHealthy {
		failed = append(failed, domain.ReasonNotFeelingHealthy)
	}
	if answers.HasUnprotectedSex {
		failed = append(failed, domain.ReasonUnprotectedSex)
	}
	if answers.HasUsedDrugs {
		failed = append(failed, domain.ReasonDrugUse)
	}
	if answers.HasBeenInjected {
		failed = append(failed, domain.ReasonInjected)
	}

	return domain.EligibilityDecision{
		Eligible:       len(failed) == 0,
		FailedCriteria: failed,
	}
}
