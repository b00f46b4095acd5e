package sentiment

const (
	LabelVeryNegative = "Very Negative"
	LabelNegative     = "Negative"
	LabelNeutral      = "Neutral"
	LabelPositive     = "Positive"
	LabelVeryPositive = "Very Positive"
)

// labelBands are ordered upper bounds; a score below Below gets Label.
var labelBands = []struct {
	Below float64
	Label string
}{
	{0.2, LabelVeryNegative},
	{0.4, LabelNegative},
	{0.6, LabelNeutral},
	{0.8, LabelPositive},
}

// Labels lists every label from most negative to most positive.
var Labels = []string{LabelVeryNegative, LabelNegative, LabelNeutral, LabelPositive, LabelVeryPositive}

// Label maps a score to its human readable bucket.
func Label(score float64) string {
	for _, b := range labelBands {
		if score < b.Below {
			return b.Label
		}
	}
	return LabelVeryPositive
}
