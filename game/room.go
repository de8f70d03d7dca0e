package game

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type Phase int

const (
	PhaseWaiting Phase = iota
	PhaseChoosingWord
	PhasePlaying
	PhaseRoundEnded
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "waiting"
	case PhaseChoosingWord:
		return "choosing_word"
	case PhasePlaying:
		return "playing"
	case PhaseRoundEnded:
		return "ended_round"
	case PhaseEnded:
		return "ended"
	}
	return "unknown"
}

// Timings are the server-wide pacing knobs, as opposed to the per-room
// Settings chosen by the creator.
type Timings struct {
	WordChoice time.Duration
	RoundEnd   time.Duration
	Grace      time.Duration
}

func DefaultTimings() Timings {
	return Timings{
		WordChoice: 5 * time.Second,
		RoundEnd:   5 * time.Second,
		Grace:      15 * time.Second,
	}
}

type roomDescription struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	PlayerCount int    `json:"playerCount"`
	MaxPlayers  int    `json:"maxPlayers"`
	Started     bool   `json:"started"`
	private     bool
}

type joinRequest struct {
	nickname string
	uuid     string
	conn     Conn
	resp     chan joinResult
}

type joinResult struct {
	room   *Room
	player *Player
	sess   *session
	err    error
}

func newJoinRequest(nickname, uuid string, conn Conn) joinRequest {
	return joinRequest{nickname: nickname, uuid: uuid, conn: conn, resp: make(chan joinResult, 1)}
}

type sendTask struct {
	to  *Player
	pkt ServerPacket
}

type Room struct {
	code    string
	name    string
	private bool

	settings Settings
	timings  Timings

	lobby Lobby
	words WordGenerator
	log   zerolog.Logger
	now   func() time.Time

	players     []*Player
	finalScores []PlayerInfo

	phase         Phase
	round         int
	turn          int
	drawerID      string
	word          string
	wordChoices   []string
	timer         int
	guessedIDs    []string
	revealed      map[int]bool
	hintsShown    int
	drawing       drawingLog
	phaseDeadline time.Time

	inbox       chan envelope
	joins       chan joinRequest
	disconnects chan disconnect
	ticks       chan time.Time
	pings       chan struct{}
	done        chan struct{}
	closeOnce   sync.Once

	sendTasks []sendTask
}

func NewRoom(name string, private bool, settings Settings, timings Timings, words WordGenerator, logger zerolog.Logger) *Room {
	return &Room{
		name:        name,
		private:     private,
		settings:    settings,
		timings:     timings,
		words:       words,
		log:         logger,
		now:         time.Now,
		turn:        -1,
		phase:       PhaseWaiting,
		revealed:    map[int]bool{},
		players:     make([]*Player, 0, settings.MaxPlayers),
		inbox:       make(chan envelope, 1024),
		joins:       make(chan joinRequest, 32),
		disconnects: make(chan disconnect, 64),
		ticks:       make(chan time.Time, 24),
		pings:       make(chan struct{}, 1),
		done:        make(chan struct{}),
	}
}

func (r *Room) SetCode(code string) {
	r.code = code
	r.log = r.log.With().Str("room", code).Logger()
}

func (r *Room) SetParentLobby(l Lobby) {
	r.lobby = l
}

func (r *Room) Description() roomDescription {
	return roomDescription{
		Code:        r.code,
		Name:        r.name,
		PlayerCount: len(r.players),
		MaxPlayers:  r.settings.MaxPlayers,
		Started:     r.phase != PhaseWaiting,
		private:     r.private,
	}
}

// Tick is called from the lobby actor; a busy room just skips the beat.
func (r *Room) Tick(now time.Time) {
	select {
	case r.ticks <- now:
	default:
	}
}

func (r *Room) PingPlayers() {
	select {
	case r.pings <- struct{}{}:
	default:
	}
}

func (r *Room) RequestJoin(jreq joinRequest) error {
	select {
	case r.joins <- jreq:
		return nil
	default:
		return ErrRoomUnavailable
	}
}

func (r *Room) CloseAndRelease() {
	r.closeOnce.Do(func() {
		close(r.done)
	})
}

// GameLoop is the room actor. Every piece of room state is touched only
// from this goroutine; queued packets are flushed after each event.
func (r *Room) GameLoop() {
	defer func() {
		for _, p := range r.players {
			if p.sess != nil {
				p.sess.close("room closed")
			}
		}
	}()

	for {
		select {
		case <-r.done:
			return
		case env := <-r.inbox:
			r.handleEnvelope(env)
		case jreq := <-r.joins:
			r.handleJoinRequest(jreq)
		case d := <-r.disconnects:
			r.handleDisconnect(d)
		case now := <-r.ticks:
			r.handleTick(now)
		case <-r.pings:
			r.queuePings()
		}
		r.flush()
	}
}

func (r *Room) handleEnvelope(env envelope) {
	p := env.from
	if p.sess != env.sess {
		// superseded connection
		return
	}
	switch env.pkt.Type {
	case ClientStartGame:
		r.startGame(p)
	case ClientResetGame:
		r.resetGame(p)
	case ClientChooseWord:
		var payload ChooseWordPayload
		if err := json.Unmarshal(env.pkt.Payload, &payload); err != nil {
			return
		}
		r.chooseWord(p.sessionID(), payload.Word)
	case ClientGuess:
		var payload GuessPayload
		if err := json.Unmarshal(env.pkt.Payload, &payload); err != nil {
			return
		}
		r.handleGuess(p, payload.Text)
	case ClientDraw:
		var action DrawingAction
		if err := json.Unmarshal(env.pkt.Payload, &action); err != nil {
			return
		}
		r.handleDraw(p, action)
	default:
		r.log.Debug().Str("type", env.pkt.Type).Msg("unknown packet type")
	}
}

func (r *Room) send(p *Player, pkt ServerPacket) {
	r.sendTasks = append(r.sendTasks, sendTask{to: p, pkt: pkt})
}

func (r *Room) broadcast(pkt ServerPacket) {
	for _, p := range r.players {
		if p.connected {
			r.send(p, pkt)
		}
	}
}

func (r *Room) broadcastExcept(skip *Player, pkt ServerPacket) {
	for _, p := range r.players {
		if p.connected && p != skip {
			r.send(p, pkt)
		}
	}
}

func (r *Room) flush() {
	for _, task := range r.sendTasks {
		s := task.to.sess
		if s == nil {
			continue
		}
		data, err := json.Marshal(task.pkt)
		if err != nil {
			r.log.Error().Err(err).Str("type", task.pkt.Type).Msg("packet marshal failed")
			continue
		}
		select {
		case s.send <- data:
		default:
			// slow consumer, drop the frame
		}
	}
	r.sendTasks = r.sendTasks[:0]
}

func (r *Room) queuePings() {
	for _, p := range r.players {
		if p.sess == nil {
			continue
		}
		select {
		case p.sess.ping <- struct{}{}:
		default:
		}
	}
}

func (r *Room) connectedCount() int {
	n := 0
	for _, p := range r.players {
		if p.connected {
			n++
		}
	}
	return n
}

func (r *Room) playerBySession(id string) *Player {
	if id == "" {
		return nil
	}
	for _, p := range r.players {
		if p.sessionID() == id {
			return p
		}
	}
	return nil
}

func (r *Room) hasGuessed(id string) bool {
	for _, g := range r.guessedIDs {
		if g == id {
			return true
		}
	}
	return false
}

// maskedWord is what non-drawers see: revealed letters and spaces,
// underscores everywhere else.
func (r *Room) maskedWord() string {
	runes := []rune(r.word)
	out := make([]rune, len(runes))
	for i, c := range runes {
		if c == ' ' || r.revealed[i] {
			out[i] = c
		} else {
			out[i] = '_'
		}
	}
	return string(out)
}

func (r *Room) snapshot() RoomSnapshot {
	players := make([]PlayerInfo, 0, len(r.players))
	for _, p := range r.players {
		players = append(players, p.info())
	}
	guessed := make([]string, len(r.guessedIDs))
	copy(guessed, r.guessedIDs)

	display := ""
	if r.phase == PhasePlaying {
		display = r.maskedWord()
	}

	return RoomSnapshot{
		Code:     r.code,
		Name:     r.name,
		Private:  r.private,
		Settings: r.settings,
		Players:  players,
		State: GameStateInfo{
			Status:      r.phase.String(),
			Round:       r.round,
			Turn:        r.turn,
			DrawerID:    r.drawerID,
			Timer:       r.timer,
			GuessedIDs:  guessed,
			WordDisplay: display,
		},
		FinalScores: r.finalScores,
	}
}

func (r *Room) updateDescription() {
	if r.lobby != nil {
		r.lobby.RequestUpdateDescription(r.Description())
	}
}
