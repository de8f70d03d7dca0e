package game

import "time"

type periodicTicker struct{}

func NewPeriodicTickerChannelCreator() periodicTicker {
	return periodicTicker{}
}

func (periodicTicker) Create(duration time.Duration) <-chan time.Time {
	return time.NewTicker(duration).C
}
