package game

import (
	"math/rand"
	"slices"
	"sort"
	"strings"
	"time"
)

// setPhase swaps the phase and its deadline together. Replacing the
// deadline is also what cancels the previous phase's timer, so any stale
// tick observing the old deadline becomes a no-op.
func (r *Room) setPhase(phase Phase, deadline time.Time) {
	r.phase = phase
	r.phaseDeadline = deadline
}

func (r *Room) startGame(p *Player) {
	if !p.host || r.phase != PhaseWaiting {
		return
	}
	if r.connectedCount() < 2 {
		r.send(p, MakePacketSystem("You need at least 2 active players to start.", false))
		return
	}
	for _, q := range r.players {
		q.score = 0
	}
	r.finalScores = nil
	r.round = 1
	r.turn = -1
	r.updateDescription()
	r.startRound(r.now())
}

func (r *Room) resetGame(p *Player) {
	if !p.host || r.phase != PhaseEnded {
		return
	}
	r.setPhase(PhaseWaiting, time.Time{})
	r.startGame(p)
}

// startRound advances the rotation and opens word choice for the next
// drawer. A wrap of the turn index is what increments the round counter.
func (r *Room) startRound(now time.Time) {
	if r.phase == PhaseEnded {
		return
	}
	if r.connectedCount() < 2 && r.phase != PhaseWaiting {
		r.endGame("Not enough players to continue.")
		return
	}
	r.turn++
	if r.turn >= len(r.players) {
		r.turn = 0
		r.round++
	}
	if r.round > r.settings.Rounds {
		r.endGame("Game over!")
		return
	}
	scanned := 0
	for scanned < len(r.players) && !r.players[r.turn].connected {
		r.turn = (r.turn + 1) % len(r.players)
		scanned++
	}
	drawer := r.players[r.turn]
	if !drawer.connected {
		r.endGame("Not enough players to continue.")
		return
	}

	r.word = ""
	r.wordChoices = r.words.Choices(3)
	r.guessedIDs = r.guessedIDs[:0]
	r.revealed = map[int]bool{}
	r.hintsShown = 0
	r.timer = 0
	r.drawing.clear()
	r.drawerID = drawer.sessionID()
	r.setPhase(PhaseChoosingWord, now.Add(r.timings.WordChoice))

	r.broadcast(MakePacketDraw(DrawingAction{Tool: ToolClear}))
	r.send(drawer, MakePacketWordChoices(r.wordChoices))
	r.broadcast(MakePacketSystem(drawer.Nickname+" is choosing a word...", false))
	r.broadcast(MakePacketSound("new_round"))
	r.broadcast(MakePacketRoomState(r.snapshot()))
}

func (r *Room) chooseWord(sessionID, word string) {
	if r.phase != PhaseChoosingWord || sessionID != r.drawerID {
		return
	}
	if !slices.Contains(r.wordChoices, word) {
		return
	}
	drawer := r.playerBySession(sessionID)
	if drawer == nil {
		return
	}
	r.word = word
	r.wordChoices = nil
	r.timer = r.settings.DrawTime
	r.setPhase(PhasePlaying, time.Time{})

	r.send(drawer, MakePacketYourWord(word))
	display := r.maskedWord()
	for _, p := range r.players {
		if p.connected && p != drawer {
			r.send(p, MakePacketWordHint(display))
		}
	}
	r.broadcast(MakePacketSystem(drawer.Nickname+" is drawing!", false))
	r.broadcast(MakePacketRoomState(r.snapshot()))
}

// autoChooseWord fires when the drawer sat on the choice too long.
func (r *Room) autoChooseWord() {
	if len(r.wordChoices) == 0 {
		r.endRound("drawer_left")
		return
	}
	r.chooseWord(r.drawerID, r.wordChoices[rand.Intn(len(r.wordChoices))])
}

func (r *Room) handleTick(now time.Time) {
	if !r.reapDeparted(now) {
		return
	}
	switch r.phase {
	case PhaseChoosingWord:
		if now.Before(r.phaseDeadline) {
			return
		}
		r.autoChooseWord()
	case PhasePlaying:
		r.timer--
		r.broadcast(MakePacketTimer(r.timer))
		r.revealHints()
		if r.timer <= 0 {
			r.endRound("time_up")
		}
	case PhaseRoundEnded:
		if now.Before(r.phaseDeadline) {
			return
		}
		r.startRound(now)
	}
}

// revealHints uncovers letters as the draw timer burns down. The draw
// time is split into hints+1 spans; after k spans the display exposes
// floor(20% * k) of the non-space letters, chosen at random. Revealed
// positions never disappear within a round.
func (r *Room) revealHints() {
	if r.settings.Hints <= 0 || r.word == "" {
		return
	}
	span := r.settings.DrawTime / (r.settings.Hints + 1)
	if span <= 0 {
		span = 1
	}
	steps := (r.settings.DrawTime - r.timer) / span
	if steps > r.settings.Hints {
		steps = r.settings.Hints
	}
	if steps <= r.hintsShown {
		return
	}
	r.hintsShown = steps

	runes := []rune(r.word)
	candidates := make([]int, 0, len(runes))
	nonSpace := 0
	for i, c := range runes {
		if c == ' ' {
			continue
		}
		nonSpace++
		if !r.revealed[i] {
			candidates = append(candidates, i)
		}
	}
	target := int(float64(nonSpace) * 0.2 * float64(steps))
	if target > nonSpace {
		target = nonSpace
	}
	before := len(r.revealed)
	rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	for _, idx := range candidates {
		if len(r.revealed) >= target {
			break
		}
		r.revealed[idx] = true
	}
	if len(r.revealed) == before {
		return
	}
	display := r.maskedWord()
	for _, p := range r.players {
		if p.connected && p.sessionID() != r.drawerID {
			r.send(p, MakePacketWordHint(display))
		}
	}
}

func (r *Room) handleGuess(p *Player, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	sid := p.sessionID()
	if sid == r.drawerID || r.hasGuessed(sid) {
		return
	}
	r.broadcast(MakePacketChat(sid, p.Nickname, text))
	r.broadcast(MakePacketSound("message"))
	if r.phase != PhasePlaying || normalizeGuess(text) != normalizeGuess(r.word) {
		return
	}

	r.guessedIDs = append(r.guessedIDs, sid)
	first := len(r.guessedIDs) == 1
	p.score += guesserPoints(r.timer, r.settings.DrawTime, first)
	drawer := r.playerBySession(r.drawerID)
	eligible := r.connectedCount() - 1
	if drawer != nil {
		drawer.score += drawerShare(eligible)
	}
	r.broadcast(MakePacketSystem(p.Nickname+" guessed the word!", true))
	r.broadcast(MakePacketSound("correct_guess"))

	if len(r.guessedIDs) >= eligible && len(r.players) > 1 {
		if drawer != nil {
			drawer.score += allGuessedDrawerBonus
		}
		for _, q := range r.players {
			if r.hasGuessed(q.sessionID()) {
				q.score += allGuessedGuesserBonus
			}
		}
		r.broadcast(MakePacketSystem("Everyone guessed the word!", false))
		r.endRound("all_guessed")
		return
	}
	r.broadcast(MakePacketRoomState(r.snapshot()))
}

func (r *Room) handleDraw(p *Player, action DrawingAction) {
	if r.drawerID == "" || p.sessionID() != r.drawerID {
		return
	}
	switch action.Tool {
	case ToolClear:
		r.drawing.clear()
		r.broadcastExcept(p, MakePacketDraw(action))
	case ToolUndo:
		r.drawing.undo()
		r.broadcastExcept(p, MakePacketDrawHistory(r.drawing.actions()))
	case ToolPencil, ToolEraser, ToolFill:
		r.drawing.append(action)
		r.broadcastExcept(p, MakePacketDraw(action))
	default:
		r.log.Debug().Str("tool", action.Tool).Msg("unknown drawing tool")
	}
}

// endRound closes the active round and schedules the next one. It is a
// no-op outside playing and choosing_word; the latter is the abort path
// for a drawer vanishing before picking a word.
func (r *Room) endRound(reason string) {
	if r.phase != PhasePlaying && r.phase != PhaseChoosingWord {
		return
	}
	r.setPhase(PhaseRoundEnded, r.now().Add(r.timings.RoundEnd))
	r.wordChoices = nil
	if reason == "time_up" {
		r.broadcast(MakePacketSound("time_up"))
	}
	if r.word != "" {
		r.broadcast(MakePacketSystem("Round over! The word was: "+r.word, false))
	} else {
		r.broadcast(MakePacketSystem("Round over!", false))
	}
	r.broadcast(MakePacketRoundOver(r.word, reason))
	r.broadcast(MakePacketRoomState(r.snapshot()))
}

func (r *Room) endGame(message string) {
	if r.phase == PhaseEnded {
		return
	}
	r.setPhase(PhaseEnded, time.Time{})
	r.drawerID = ""
	r.wordChoices = nil

	scores := make([]PlayerInfo, 0, len(r.players))
	for _, p := range r.players {
		scores = append(scores, p.info())
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	r.finalScores = scores

	r.broadcast(MakePacketSystem(message, false))
	r.broadcast(MakePacketFinalScores(scores))
	r.broadcast(MakePacketSound("game_over"))
	r.broadcast(MakePacketRoomState(r.snapshot()))
}
