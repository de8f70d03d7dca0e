package game

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// session is one live connection bound to a player. A reconnect replaces
// the whole session, so pumps of a superseded connection can be told apart
// from the current one by pointer identity.
type session struct {
	id   string
	conn Conn
	send chan []byte
	ping chan struct{}
	done chan struct{}
	once sync.Once
}

func newSession(conn Conn) *session {
	return &session{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, 256),
		ping: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

func (s *session) close(reason string) {
	s.once.Do(func() {
		close(s.done)
		s.conn.Close(reason)
	})
}

// Player is a roster seat. It survives disconnects until the removal
// deadline passes; only the session underneath it changes. All fields are
// owned by the room actor.
type Player struct {
	UUID     string
	Nickname string

	score      int
	host       bool
	connected  bool
	removeAt   time.Time
	sess       *session
	lastSessID string
}

func (p *Player) sessionID() string {
	if p.sess == nil {
		return ""
	}
	return p.sess.id
}

func (p *Player) info() PlayerInfo {
	return PlayerInfo{
		ID:        p.sessionID(),
		Nickname:  p.Nickname,
		Score:     p.score,
		IsHost:    p.host,
		Connected: p.connected,
	}
}

type envelope struct {
	pkt  ClientPacket
	from *Player
	sess *session
}

type disconnect struct {
	player *Player
	sess   *session
}

// readPump decodes inbound frames into the room inbox. Drawing traffic is
// bursty, hence the generous limiter.
func readPump(r *Room, p *Player, s *session) {
	limiter := rate.NewLimiter(rate.Limit(60), 120)

	defer func() {
		s.close("")
		select {
		case r.disconnects <- disconnect{player: p, sess: s}:
		case <-r.done:
		}
	}()

	for {
		data, err := s.conn.Read()
		if err != nil {
			return
		}
		if !limiter.Allow() {
			continue
		}
		var pkt ClientPacket
		if err := json.Unmarshal(data, &pkt); err != nil {
			continue
		}
		select {
		case r.inbox <- envelope{pkt: pkt, from: p, sess: s}:
		case <-r.done:
			return
		}
	}
}

func writePump(s *session) {
	for {
		select {
		case data := <-s.send:
			if err := s.conn.Write(data); err != nil {
				return
			}
		case <-s.ping:
			if err := s.conn.Ping(); err != nil {
				return
			}
		case <-s.done:
			return
		}
	}
}
