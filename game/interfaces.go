package game

import "time"

// Conn is the transport seam between the engine and the websocket layer.
type Conn interface {
	Close(reason string)
	Write(data []byte) error
	Read() ([]byte, error)
	Ping() error
}

// Lobby is the slice of the registry a room is allowed to talk back to.
type Lobby interface {
	RequestUpdateDescription(desc roomDescription)
	RemoveRoom(code string)
}

// WordGenerator produces candidate words for a drawer to choose from.
type WordGenerator interface {
	Choices(count int) []string
}

type PeriodicTickerChannelCreator interface {
	Create(duration time.Duration) <-chan time.Time
}

// UniqueCodeGenerator mints join codes; Dispose returns a code to the
// pool once its room is gone.
type UniqueCodeGenerator interface {
	Generate() string
	Dispose(code string)
}
