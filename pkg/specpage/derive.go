package specpage

// ResolveRatio picks the power-to-weight ratio for a record. An explicit
// value located on the page always wins. Otherwise the ratio is derived
// from power and weight, preferring wet weight over dry weight as the
// denominator: wet weight is the ready-to-ride figure.
func ResolveRatio(explicit, powerHP, wetWeightKG, dryWeightKG *float64) *float64 {
	if explicit != nil {
		return explicit
	}
	if powerHP == nil {
		return nil
	}
	if wetWeightKG != nil {
		ratio := *powerHP / *wetWeightKG
		return &ratio
	}
	if dryWeightKG != nil {
		ratio := *powerHP / *dryWeightKG
		return &ratio
	}
	return nil
}
