package game

import "github.com/dustin/go-humanize"

// Stats tracks the player's progress.
type Stats struct {
	Score     int
	HighScore int // never reset while the process runs
	Level     int
	ShipsLeft int
	Active    bool
}

// Reset starts a fresh run with shipLimit ships. HighScore and Active are
// left alone.
func (s *Stats) Reset(shipLimit int) {
	s.Score = 0
	s.Level = 1
	s.ShipsLeft = shipLimit
}

// AddScore adds points and raises the high score if it was beaten.
// Reports whether the high score changed.
func (s *Stats) AddScore(points int) bool {
	s.Score += points
	if s.Score > s.HighScore {
		s.HighScore = s.Score
		return true
	}
	return false
}

// FormatScore rounds a score to the nearest ten and groups thousands with
// commas, e.g. 12345 -> "12,350".
func FormatScore(score int) string {
	rounded := (abs(score) + 5) / 10 * 10
	if score < 0 {
		rounded = -rounded
	}
	return humanize.Comma(int64(rounded))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
