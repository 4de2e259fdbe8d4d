package grade

// Band classifies a grade value into a display tier.
type Band string

const (
	BandExcellent Band = "excellent" // >= 90
	BandGood      Band = "good"      // >= 80
	BandPassing   Band = "passing"   // >= 70
	BandFailing   Band = "failing"
)

// BandFor maps a grade value to its band.
func BandFor(value int) Band {
	switch {
	case value >= 90:
		return BandExcellent
	case value >= 80:
		return BandGood
	case value >= 70:
		return BandPassing
	default:
		return BandFailing
	}
}

// Average returns the mean of the grade values; 0 for no grades.
func Average(grades []Grade) float64 {
	if len(grades) == 0 {
		return 0
	}
	var sum int
	for _, g := range grades {
		sum += g.Value
	}
	return float64(sum) / float64(len(grades))
}
