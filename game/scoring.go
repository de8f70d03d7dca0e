package game

import "math"

const (
	guessBasePoints        = 200
	firstGuessBonus        = 50
	drawerPointPool        = 300
	allGuessedDrawerBonus  = 200
	allGuessedGuesserBonus = 50
)

// guesserPoints rewards speed: the full base plus up to 100 points scaled
// by the fraction of the draw timer still remaining.
func guesserPoints(timeLeft, drawTime int, first bool) int {
	points := guessBasePoints + timeLeft*100/drawTime
	if first {
		points += firstGuessBonus
	}
	return points
}

// drawerShare is the drawer's cut per correct guess, the point pool split
// across the connected non-drawers at the moment of the guess.
func drawerShare(guessers int) int {
	if guessers < 1 {
		guessers = 1
	}
	return int(math.Round(drawerPointPool / float64(guessers)))
}
