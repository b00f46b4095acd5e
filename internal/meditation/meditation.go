// Package meditation maps a mood to a guided meditation session and holds the
// session catalog.
package meditation

import (
	"strings"

	"github.com/sbilibin2017/gw-mood-journal/internal/models"
)

const (
	Breathing     = "breathing.mp3"
	Focus         = "focus.mp3"
	Gratitude     = "gratitude.mp3"
	Relaxation    = "relaxation.mp3"
	StressRelief  = "stress_relief.mp3"
	Sleep         = "sleep.mp3"
	AnxietyRelief = "anxiety_relief.mp3"
	MorningEnergy = "morning_energy.mp3"
)

// catalog is ordered: free sessions first.
var catalog = []models.MeditationSession{
	{ID: Breathing, DisplayName: "Breathing Exercise"},
	{ID: Focus, DisplayName: "Focus Meditation"},
	{ID: Gratitude, DisplayName: "Gratitude Meditation", Premium: true},
	{ID: Relaxation, DisplayName: "Deep Relaxation", Premium: true},
	{ID: StressRelief, DisplayName: "Stress Relief", Premium: true},
	{ID: Sleep, DisplayName: "Sleep Meditation", Premium: true},
	{ID: AnxietyRelief, DisplayName: "Anxiety Relief", Premium: true},
	{ID: MorningEnergy, DisplayName: "Morning Energy", Premium: true},
}

// families are matched in order against the emotion; first match wins.
var families = []struct {
	keywords []string
	session  string
}{
	{[]string{"anxiety", "anxious", "stress"}, AnxietyRelief},
	{[]string{"sad", "grief"}, Gratitude},
	{[]string{"fatigue", "tired", "sleep"}, Sleep},
	{[]string{"anger", "angry", "frustrat"}, StressRelief},
	{[]string{"focus", "distract"}, Focus},
}

// Recommend picks a session for an entry. A matching emotion family wins over
// the score; otherwise the score band decides. It never fails.
func Recommend(score float64, emotion string) models.Recommendation {
	if e := strings.ToLower(strings.TrimSpace(emotion)); e != "" {
		for _, f := range families {
			for _, k := range f.keywords {
				if strings.Contains(e, k) {
					return recommendation(f.session)
				}
			}
		}
	}

	switch {
	case score < 0.3:
		return recommendation(Gratitude)
	case score < 0.45:
		return recommendation(Breathing)
	case score <= 0.7:
		return recommendation(Focus)
	default:
		return recommendation(MorningEnergy)
	}
}

// Sessions lists the catalog shown to a tier: the premium sessions for
// premium users, the free ones otherwise. Free audio stays playable for
// premium users through Allowed.
func Sessions(premium bool) []models.MeditationSession {
	out := make([]models.MeditationSession, 0, len(catalog))
	for _, s := range catalog {
		if s.Premium == premium {
			out = append(out, s)
		}
	}
	return out
}

// Lookup resolves a session by its audio file name.
func Lookup(id string) (models.MeditationSession, bool) {
	for _, s := range catalog {
		if s.ID == id {
			return s, true
		}
	}
	return models.MeditationSession{}, false
}

// Allowed reports whether a user of the given tier may play the session.
func Allowed(s models.MeditationSession, premium bool) bool {
	return premium || !s.Premium
}

func recommendation(id string) models.Recommendation {
	s, _ := Lookup(id)
	return models.Recommendation{ID: s.ID, DisplayName: s.DisplayName}
}
