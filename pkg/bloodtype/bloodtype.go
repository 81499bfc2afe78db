package bloodtype

import "strings"

// BloodType is one of the 8 canonical ABO/Rh combinations.
type BloodType string

const (
	OPositive  BloodType = "O+"
	ONegative  BloodType = "O-"
	APositive  BloodType = "A+"
	ANegative  BloodType = "A-"
	BPositive  BloodType = "B+"
	BNegative  BloodType = "B-"
	ABPositive BloodType = "AB+"
	ABNegative BloodType = "AB-"
)

var All = []BloodType{
	OPositive, ONegative,
	APositive, ANegative,
	BPositive, BNegative,
	ABPositive, ABNegative,
}

// Parse normalizes a raw blood type string. The boolean reports whether the
// input is one of the 8 canonical values; callers must treat false as "no
// compatibility", never as an error to surface.
func Parse(raw string) (BloodType, bool) {
	bt := BloodType(strings.ToUpper(strings.TrimSpace(raw)))
	for _, known := range All {
		if bt == known {
			return bt, true
		}
	}
	return "", false
}

func (bt BloodType) String() string {
	return string(bt)
}
