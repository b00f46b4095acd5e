package sentiment

import "strings"

type keyword struct {
	word   string
	weight float64
}

// Keyword weights. A keyword counts once when it occurs anywhere in the text.
var (
	positiveKeywords = []keyword{
		{"good", 1}, {"great", 1.5}, {"excellent", 2}, {"amazing", 2}, {"happy", 1.5},
		{"joy", 1.5}, {"love", 1.5}, {"wonderful", 2}, {"excited", 1.5}, {"pleased", 1},
		{"content", 1}, {"grateful", 1.5}, {"optimistic", 1}, {"bliss", 2}, {"calm", 1},
		{"peaceful", 1}, {"relaxed", 1}, {"thankful", 1.5}, {"appreciative", 1},
		{"serene", 1}, {"delighted", 2}, {"proud", 1.5}, {"hopeful", 1},
	}
	negativeKeywords = []keyword{
		{"bad", 1}, {"terrible", 2}, {"awful", 2}, {"horrible", 2}, {"sad", 1.5},
		{"angry", 1.5}, {"hate", 2}, {"dislike", 1}, {"upset", 1.5}, {"frustrated", 1.5},
		{"disappointed", 1.5}, {"anxious", 1.5}, {"depressed", 2}, {"stressed", 1.5},
		{"worried", 1}, {"fear", 1.5}, {"scared", 1.5}, {"dread", 1.5}, {"miserable", 2},
		{"heartbroken", 2}, {"lonely", 1.5}, {"exhausted", 1},
	}
)

// KeywordScore is positive / (positive + negative) over the weights of the
// keywords found in text, or 0.5 when none is found. It is a pure function.
func KeywordScore(text string) float64 {
	lower := strings.ToLower(text)

	var pos, neg float64
	for _, k := range positiveKeywords {
		if strings.Contains(lower, k.word) {
			pos += k.weight
		}
	}
	for _, k := range negativeKeywords {
		if strings.Contains(lower, k.word) {
			neg += k.weight
		}
	}

	if pos+neg == 0 {
		return NeutralScore
	}
	return pos / (pos + neg)
}
