package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuesserPoints(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		desc     string
		timeLeft int
		drawTime int
		first    bool
		expected int
	}{
		{desc: "first guess at half time", timeLeft: 40, drawTime: 80, first: true, expected: 300},
		{desc: "later guess at half time", timeLeft: 40, drawTime: 80, first: false, expected: 250},
		{desc: "first guess with full timer", timeLeft: 80, drawTime: 80, first: true, expected: 350},
		{desc: "guess on the buzzer", timeLeft: 0, drawTime: 80, first: false, expected: 200},
		{desc: "speed bonus floors the fraction", timeLeft: 79, drawTime: 80, first: true, expected: 348},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			assert.Equal(t, tC.expected, guesserPoints(tC.timeLeft, tC.drawTime, tC.first))
		})
	}
}

func TestDrawerShare(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 300, drawerShare(1))
	assert.Equal(t, 150, drawerShare(2))
	assert.Equal(t, 100, drawerShare(3))
	assert.Equal(t, 75, drawerShare(4))
	assert.Equal(t, 43, drawerShare(7))
	// degenerate case, everyone else vanished mid-guess
	assert.Equal(t, 300, drawerShare(0))
}
