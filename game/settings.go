package game

const (
	ModeNormal      = "normal"
	ModeCombination = "combination"
)

// Settings are the per-room knobs chosen at creation time. They are bound
// from the create-room query string and clamped before the room is built.
type Settings struct {
	Rounds     int    `form:"rounds" json:"rounds"`
	DrawTime   int    `form:"drawTime" json:"drawTime"`
	MaxPlayers int    `form:"maxPlayers" json:"maxPlayers"`
	WordCount  int    `form:"wordCount" json:"wordCount"`
	WordLength int    `form:"wordLength" json:"wordLength"`
	GameMode   string `form:"gameMode" json:"gameMode"`
	Hints      int    `form:"hints" json:"hints"`
}

func DefaultSettings() Settings {
	return Settings{
		Rounds:     3,
		DrawTime:   80,
		MaxPlayers: 8,
		WordCount:  2,
		WordLength: 0,
		GameMode:   ModeNormal,
		Hints:      2,
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamped returns a copy with every field forced into its valid range.
func (s Settings) Clamped() Settings {
	s.Rounds = clampInt(s.Rounds, 1, 10)
	s.DrawTime = clampInt(s.DrawTime, 30, 120)
	s.MaxPlayers = clampInt(s.MaxPlayers, 2, 12)
	s.WordCount = clampInt(s.WordCount, 1, 5)
	if s.WordLength < 0 {
		s.WordLength = 0
	}
	s.Hints = clampInt(s.Hints, 0, 5)
	if s.GameMode != ModeCombination {
		s.GameMode = ModeNormal
	}
	return s
}
