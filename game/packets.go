package game

import "encoding/json"

// Inbound verbs. The room actor switches exhaustively on Type; unknown
// verbs are dropped.
const (
	ClientStartGame  = "start_game"
	ClientChooseWord = "choose_word"
	ClientGuess      = "guess"
	ClientDraw       = "draw"
	ClientResetGame  = "reset_game"
)

type ClientPacket struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type ChooseWordPayload struct {
	Word string `json:"word"`
}

type GuessPayload struct {
	Text string `json:"text"`
}

// Outbound notification types.
const (
	ServerJoined      = "joined"
	ServerRoomState   = "room_state"
	ServerTimer       = "timer"
	ServerWordChoices = "word_choices"
	ServerYourWord    = "your_word"
	ServerWordHint    = "word_hint"
	ServerChat        = "chat"
	ServerSystem      = "system"
	ServerDraw        = "draw"
	ServerDrawHistory = "draw_history"
	ServerRoundOver   = "round_over"
	ServerFinalScores = "final_scores"
	ServerSound       = "sound"
	ServerError       = "error"
)

type ServerPacket struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

type PlayerInfo struct {
	ID        string `json:"id"`
	Nickname  string `json:"nickname"`
	Score     int    `json:"score"`
	IsHost    bool   `json:"isHost"`
	Connected bool   `json:"connected"`
}

type GameStateInfo struct {
	Status      string   `json:"status"`
	Round       int      `json:"currentRound"`
	Turn        int      `json:"turn"`
	DrawerID    string   `json:"currentDrawerId,omitempty"`
	Timer       int      `json:"timer"`
	GuessedIDs  []string `json:"guessedPlayerIds"`
	WordDisplay string   `json:"wordDisplay,omitempty"`
}

type RoomSnapshot struct {
	Code        string        `json:"code"`
	Name        string        `json:"name"`
	Private     bool          `json:"isPrivate"`
	Settings    Settings      `json:"settings"`
	Players     []PlayerInfo  `json:"players"`
	State       GameStateInfo `json:"gameState"`
	FinalScores []PlayerInfo  `json:"finalScores,omitempty"`
}

type ChatInfo struct {
	ID       string `json:"id"`
	Nickname string `json:"nickname"`
	Text     string `json:"text"`
}

type SystemInfo struct {
	Content        string `json:"content"`
	IsCorrectGuess bool   `json:"isCorrectGuess,omitempty"`
}

type RoundOverInfo struct {
	Word   string `json:"word"`
	Reason string `json:"reason"`
}

func MakePacketJoined(code string) ServerPacket {
	return ServerPacket{Type: ServerJoined, Payload: code}
}

func MakePacketRoomState(snap RoomSnapshot) ServerPacket {
	return ServerPacket{Type: ServerRoomState, Payload: snap}
}

func MakePacketTimer(seconds int) ServerPacket {
	return ServerPacket{Type: ServerTimer, Payload: seconds}
}

func MakePacketWordChoices(words []string) ServerPacket {
	return ServerPacket{Type: ServerWordChoices, Payload: words}
}

func MakePacketYourWord(word string) ServerPacket {
	return ServerPacket{Type: ServerYourWord, Payload: word}
}

func MakePacketWordHint(display string) ServerPacket {
	return ServerPacket{Type: ServerWordHint, Payload: display}
}

func MakePacketChat(id, nickname, text string) ServerPacket {
	return ServerPacket{Type: ServerChat, Payload: ChatInfo{ID: id, Nickname: nickname, Text: text}}
}

func MakePacketSystem(content string, correct bool) ServerPacket {
	return ServerPacket{Type: ServerSystem, Payload: SystemInfo{Content: content, IsCorrectGuess: correct}}
}

func MakePacketDraw(action DrawingAction) ServerPacket {
	return ServerPacket{Type: ServerDraw, Payload: action}
}

func MakePacketDrawHistory(actions []DrawingAction) ServerPacket {
	return ServerPacket{Type: ServerDrawHistory, Payload: actions}
}

func MakePacketRoundOver(word, reason string) ServerPacket {
	return ServerPacket{Type: ServerRoundOver, Payload: RoundOverInfo{Word: word, Reason: reason}}
}

func MakePacketFinalScores(scores []PlayerInfo) ServerPacket {
	return ServerPacket{Type: ServerFinalScores, Payload: scores}
}

func MakePacketSound(name string) ServerPacket {
	return ServerPacket{Type: ServerSound, Payload: name}
}

func MakePacketError(code string) ServerPacket {
	return ServerPacket{Type: ServerError, Payload: code}
}
