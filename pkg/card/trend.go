package card

// Trend is the cosmetic direction of a change string.
type Trend string

const (
	Positive Trend = "positive"
	Negative Trend = "negative"
	Neutral  Trend = "neutral"
)

// ClassifyChange looks only at the first byte of change. It does not parse
// or validate the rest: "+abc" is positive, "12%" is neutral.
func ClassifyChange(change string) Trend {
	if change == "" {
		return Neutral
	}
	switch change[0] {
	case '+':
		return Positive
	case '-':
		return Negative
	default:
		return Neutral
	}
}
