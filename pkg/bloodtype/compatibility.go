package bloodtype

// compatibility is the directed donor-to-recipient adjacency table. O- is the
// universal donor; AB+ is the universal recipient but can only give to AB+.
var compatibility = map[BloodType][]BloodType{
	ONegative:  {ONegative, OPositive, ANegative, APositive, BNegative, BPositive, ABNegative, ABPositive},
	OPositive:  {OPositive, APositive, BPositive, ABPositive},
	ANegative:  {ANegative, APositive, ABNegative, ABPositive},
	APositive:  {APositive, ABPositive},
	BNegative:  {BNegative, BPositive, ABNegative, ABPositive},
	BPositive:  {BPositive, ABPositive},
	ABNegative: {ABNegative, ABPositive},
	ABPositive: {ABPositive},
}

// CanDonateTo reports whether a donor of the given type may supply a
// recipient of the requested type. Unknown inputs on either side resolve to
// false rather than an error.
func CanDonateTo(donor, recipient string) bool {
	d, ok := Parse(donor)
	if !ok {
		return false
	}
	r, ok := Parse(recipient)
	if !ok {
		return false
	}
	for _, allowed := range compatibility[d] {
		if allowed == r {
			return true
		}
	}
	return false
}

// CompatibleRecipients returns the recipient types a donor may supply, in
// table order. Unknown donor types get an empty set.
func CompatibleRecipients(donor string) []BloodType {
	d, ok := Parse(donor)
	if !ok {
		return nil
	}
	recipients := make([]BloodType, len(compatibility[d]))
	copy(recipients, compatibility[d])
	return recipients
}
