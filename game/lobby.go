package game

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

type createRequest struct {
	room *Room
	join joinRequest
}

type lobbyJoinRequest struct {
	code string
	join joinRequest
}

type lobby struct {
	rooms        map[string]*Room
	descriptions map[string]roomDescription
	codes        UniqueCodeGenerator
	tickers      PeriodicTickerChannelCreator
	log          zerolog.Logger

	createChan chan createRequest
	removeChan chan string
	joinChan   chan lobbyJoinRequest
	listChan   chan chan []roomDescription
	descChan   chan roomDescription
}

func NewLobby(codes UniqueCodeGenerator, tickers PeriodicTickerChannelCreator, logger zerolog.Logger) *lobby {
	return &lobby{
		rooms:        map[string]*Room{},
		descriptions: map[string]roomDescription{},
		codes:        codes,
		tickers:      tickers,
		log:          logger,
		createChan:   make(chan createRequest, 32),
		removeChan:   make(chan string, 32),
		joinChan:     make(chan lobbyJoinRequest, 256),
		listChan:     make(chan chan []roomDescription, 256),
		descChan:     make(chan roomDescription, 256),
	}
}

func (l *lobby) CreateRoom(ctx context.Context, r *Room, jreq joinRequest) {
	select {
	case l.createChan <- createRequest{room: r, join: jreq}:
	case <-ctx.Done():
		jreq.resp <- joinResult{err: ErrRoomUnavailable}
	}
}

func (l *lobby) Join(ctx context.Context, code string, jreq joinRequest) {
	select {
	case l.joinChan <- lobbyJoinRequest{code: code, join: jreq}:
	case <-ctx.Done():
		jreq.resp <- joinResult{err: ErrRoomUnavailable}
	}
}

func (l *lobby) GetPublicRooms(ctx context.Context) []roomDescription {
	respChan := make(chan []roomDescription, 1)
	select {
	case l.listChan <- respChan:
		select {
		case resp := <-respChan:
			return resp
		case <-ctx.Done():
			return nil
		}
	case <-ctx.Done():
		return nil
	}
}

func (l *lobby) RequestUpdateDescription(desc roomDescription) {
	select {
	case l.descChan <- desc:
	default:
	}
}

func (l *lobby) RemoveRoom(code string) {
	l.removeChan <- code
}

// LobbyActor owns the room table. It fans a shared second-beat and ping
// ticker into every room and serializes registry mutations.
func (l *lobby) LobbyActor(started chan struct{}) {
	ticker := l.tickers.Create(time.Second)
	pingTicker := l.tickers.Create(time.Second * 30)

	close(started)

	for {
		select {
		case now := <-ticker:
			for _, r := range l.rooms {
				r.Tick(now)
			}
		case <-pingTicker:
			for _, r := range l.rooms {
				r.PingPlayers()
			}

		case req := <-l.createChan:
			l.handleCreateRoom(req)

		case code := <-l.removeChan:
			l.handleRemoveRoom(code)

		case desc := <-l.descChan:
			if _, ok := l.rooms[desc.Code]; ok {
				l.descriptions[desc.Code] = desc
			}

		case respChan := <-l.listChan:
			l.handleGetPublicRooms(respChan)

		case jreq := <-l.joinChan:
			l.handleJoinRequest(jreq)
		}
	}
}

func (l *lobby) handleCreateRoom(req createRequest) {
	code := l.codes.Generate()
	req.room.SetCode(code)
	req.room.SetParentLobby(l)
	l.rooms[code] = req.room
	l.descriptions[code] = req.room.Description()
	go req.room.GameLoop()

	l.log.Info().Str("room", code).Str("name", req.room.name).Msg("room created")

	if err := req.room.RequestJoin(req.join); err != nil {
		req.join.resp <- joinResult{err: err}
	}
}

func (l *lobby) handleRemoveRoom(code string) {
	room, ok := l.rooms[code]
	delete(l.rooms, code)
	delete(l.descriptions, code)
	l.codes.Dispose(code)
	if ok {
		room.CloseAndRelease()
		l.log.Info().Str("room", code).Msg("room removed")
	}
}

// handleGetPublicRooms lists rooms a stranger may join: public and below
// capacity.
func (l *lobby) handleGetPublicRooms(respChan chan []roomDescription) {
	out := make([]roomDescription, 0, len(l.descriptions))
	for _, desc := range l.descriptions {
		if desc.private || desc.PlayerCount >= desc.MaxPlayers {
			continue
		}
		out = append(out, desc)
	}
	respChan <- out
}

func (l *lobby) handleJoinRequest(jreq lobbyJoinRequest) {
	room, ok := l.rooms[jreq.code]
	if !ok {
		jreq.join.resp <- joinResult{err: ErrRoomNotFound}
		return
	}
	if err := room.RequestJoin(jreq.join); err != nil {
		jreq.join.resp <- joinResult{err: err}
	}
}
