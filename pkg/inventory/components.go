package inventory

// Canonical component names. The donation's raw collection is Whole Blood;
// the rest are separated or reclassified products.
const (
	ComponentWholeBlood = "Whole Blood"
	ComponentRedCells   = "Red Cells"
	ComponentPlasma     = "Plasma"
	ComponentPlatelets  = "Platelets"
	ComponentWhiteCells = "White Cells"
)

// shelfLifeDays drives the expiration date stamped on a unit at separation
// time. Platelets and white cells are short-lived; plasma keeps frozen for a
// year.
var shelfLifeDays = map[string]int{
	ComponentWholeBlood: 35,
	ComponentRedCells:   42,
	ComponentPlasma:     365,
	ComponentPlatelets:  5,
	ComponentWhiteCells: 1,
}

// yieldRatio is the fraction of an undivided whole-blood volume a component
// reclassification keeps. Applied against the unit's original quantity only,
// so reclassifying twice can never stack ratios.
var yieldRatio = map[string]float64{
	ComponentWholeBlood: 1.0,
	ComponentRedCells:   0.45,
	ComponentPlasma:     0.55,
	ComponentPlatelets:  0.05,
	ComponentWhiteCells: 0.01,
}

func ShelfLifeFor(component string) (int, bool) {
	days, ok := shelfLifeDays[component]
	return days, ok
}

func YieldRatioFor(component string) (float64, bool) {
	ratio, ok := yieldRatio[component]
	return ratio, ok
}

func KnownComponent(component string) bool {
	_, ok := shelfLifeDays[component]
	return ok
}
