package game

import "time"

func (r *Room) handleJoinRequest(jreq joinRequest) {
	for _, p := range r.players {
		if p.UUID == jreq.uuid {
			r.rebind(p, jreq)
			return
		}
	}
	if len(r.players) >= r.settings.MaxPlayers {
		jreq.resp <- joinResult{err: ErrRoomFull}
		return
	}

	s := newSession(jreq.conn)
	p := &Player{
		UUID:      jreq.uuid,
		Nickname:  jreq.nickname,
		connected: true,
		host:      len(r.players) == 0,
		sess:      s,
	}
	r.players = append(r.players, p)
	r.log.Info().Str("nickname", p.Nickname).Msg("player joined")

	r.broadcastExcept(p, MakePacketSystem(p.Nickname+" joined the room.", false))
	r.send(p, MakePacketJoined(r.code))
	r.sendSnapshotTo(p)
	r.broadcast(MakePacketRoomState(r.snapshot()))
	r.updateDescription()
	jreq.resp <- joinResult{room: r, player: p, sess: s}
}

// rebind attaches a fresh connection to an existing seat. The previous
// session (if any) is superseded; its pumps die off on the closed socket
// and their late disconnect event is ignored by the identity guard.
func (r *Room) rebind(p *Player, jreq joinRequest) {
	oldID := p.sessionID()
	if oldID == "" {
		oldID = p.lastSessID
	}
	if p.sess != nil {
		p.sess.close("superseded")
	}
	s := newSession(jreq.conn)
	p.sess = s
	p.connected = true
	p.removeAt = time.Time{}
	p.lastSessID = ""
	if jreq.nickname != "" {
		p.Nickname = jreq.nickname
	}
	r.rebaseSession(oldID, s.id)
	r.ensureHost()
	r.log.Info().Str("nickname", p.Nickname).Msg("player reconnected")

	r.broadcastExcept(p, MakePacketSystem(p.Nickname+" reconnected.", false))
	r.send(p, MakePacketJoined(r.code))
	r.sendSnapshotTo(p)
	r.broadcast(MakePacketRoomState(r.snapshot()))
	r.updateDescription()
	jreq.resp <- joinResult{room: r, player: p, sess: s}
}

// rebaseSession points round state keyed by the old session at the new
// one, so a reconnected drawer keeps the brush and a player who already
// guessed stays in the guessed set.
func (r *Room) rebaseSession(oldID, newID string) {
	if oldID == "" {
		return
	}
	if r.drawerID == oldID {
		r.drawerID = newID
	}
	for i, id := range r.guessedIDs {
		if id == oldID {
			r.guessedIDs[i] = newID
		}
	}
}

// sendSnapshotTo gives a (re)joining player everything needed to rebuild
// the view: full room state plus the entire canvas history. A returning
// drawer gets the word choices or the word back.
func (r *Room) sendSnapshotTo(p *Player) {
	r.send(p, MakePacketRoomState(r.snapshot()))
	if r.drawing.size() > 0 {
		r.send(p, MakePacketDrawHistory(r.drawing.actions()))
	}
	switch {
	case r.phase == PhaseChoosingWord && p.sessionID() == r.drawerID:
		r.send(p, MakePacketWordChoices(r.wordChoices))
	case r.phase == PhasePlaying && p.sessionID() == r.drawerID:
		r.send(p, MakePacketYourWord(r.word))
	case r.phase == PhasePlaying:
		r.send(p, MakePacketWordHint(r.maskedWord()))
	}
}

func (r *Room) handleDisconnect(d disconnect) {
	p := d.player
	if p.sess != d.sess {
		// a newer connection already took over this seat
		return
	}
	p.sess.close("")
	p.lastSessID = p.sess.id
	p.sess = nil
	p.connected = false
	p.removeAt = r.now().Add(r.timings.Grace)
	r.log.Info().Str("nickname", p.Nickname).Msg("player disconnected")

	r.broadcast(MakePacketSystem(p.Nickname+" disconnected.", false))
	r.broadcast(MakePacketSound("leave"))

	inRound := r.phase == PhasePlaying || r.phase == PhaseChoosingWord
	if d.sess.id == r.drawerID && inRound {
		r.broadcast(MakePacketSystem("The drawer left the game.", false))
		r.endRound("drawer_left")
	}
	if p.host {
		for _, other := range r.players {
			if other.connected {
				p.host = false
				other.host = true
				r.broadcast(MakePacketSystem(other.Nickname+" is now the host.", false))
				break
			}
		}
	}
	if r.connectedCount() < 2 && inRound {
		r.endGame("Not enough players to continue.")
	}
	r.broadcast(MakePacketRoomState(r.snapshot()))
	r.updateDescription()
}

// reapDeparted drops seats whose removal deadline passed. Returns false
// when the roster emptied and the room asked the lobby to tear it down.
func (r *Room) reapDeparted(now time.Time) bool {
	removed := false
	for i := 0; i < len(r.players); {
		p := r.players[i]
		if p.connected || p.removeAt.IsZero() || now.Before(p.removeAt) {
			i++
			continue
		}
		r.players = append(r.players[:i], r.players[i+1:]...)
		if i <= r.turn {
			r.turn--
		}
		removed = true
		r.log.Info().Str("nickname", p.Nickname).Msg("player removed")
		r.broadcast(MakePacketSystem(p.Nickname+" left the room.", false))
	}
	if len(r.players) == 0 {
		if r.lobby != nil {
			r.lobby.RemoveRoom(r.code)
		}
		return false
	}
	if removed {
		r.ensureHost()
		r.broadcast(MakePacketRoomState(r.snapshot()))
		r.updateDescription()
	}
	return true
}

// ensureHost promotes the first connected player when no seat holds the
// host flag, which happens when the host's seat is reaped while everyone
// else sat in their grace period.
func (r *Room) ensureHost() {
	for _, p := range r.players {
		if p.host {
			return
		}
	}
	for _, p := range r.players {
		if p.connected {
			p.host = true
			r.broadcast(MakePacketSystem(p.Nickname+" is now the host.", false))
			return
		}
	}
}
