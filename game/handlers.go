package game

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

type Handler struct {
	lobby    *lobby
	bank     *WordBank
	timings  Timings
	log      zerolog.Logger
	upgrader websocket.Upgrader
}

func NewHandler(l *lobby, bank *WordBank, timings Timings, allowedOrigins []string, logger zerolog.Logger) *Handler {
	allowAll := false
	allowed := map[string]bool{}
	for _, origin := range allowedOrigins {
		if origin == "*" {
			allowAll = true
		}
		allowed[origin] = true
	}
	return &Handler{
		lobby:   l,
		bank:    bank,
		timings: timings,
		log:     logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || allowAll || allowed[origin]
			},
		},
	}
}

func (h *Handler) Register(router gin.IRouter) {
	grp := router.Group("/game")
	grp.GET("/rooms", h.ListRoomsHandler)
	grp.GET("/create", h.CreateRoomHandler)
	grp.GET("/join/:code", h.JoinRoomHandler)
}

func (h *Handler) ListRoomsHandler(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.lobby.GetPublicRooms(ctx.Request.Context()))
}

type createParams struct {
	Name     string `form:"name"`
	Private  bool   `form:"private"`
	Nickname string `form:"nickname" binding:"required"`
	UUID     string `form:"uuid"`
	Settings
}

func (h *Handler) CreateRoomHandler(ctx *gin.Context) {
	params := createParams{Settings: DefaultSettings()}
	if err := ctx.ShouldBindQuery(&params); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid-params"})
		return
	}
	settings := params.Settings.Clamped()
	if params.Name == "" {
		params.Name = params.Nickname + "'s room"
	}
	if params.UUID == "" {
		params.UUID = uuid.NewString()
	}

	conn, err := h.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	socketConn := NewWebsocketConnection(conn)
	jreq := newJoinRequest(params.Nickname, params.UUID, socketConn)
	room := NewRoom(params.Name, params.Private, settings, h.timings, h.bank.Generator(settings), h.log)
	h.lobby.CreateRoom(ctx.Request.Context(), room, jreq)
	h.awaitJoin(socketConn, jreq)
}

type joinParams struct {
	Nickname string `form:"nickname" binding:"required"`
	UUID     string `form:"uuid"`
}

func (h *Handler) JoinRoomHandler(ctx *gin.Context) {
	var params joinParams
	if err := ctx.ShouldBindQuery(&params); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid-params"})
		return
	}
	code := ctx.Param("code")
	if params.UUID == "" {
		params.UUID = uuid.NewString()
	}

	conn, err := h.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	socketConn := NewWebsocketConnection(conn)
	jreq := newJoinRequest(params.Nickname, params.UUID, socketConn)
	h.lobby.Join(ctx.Request.Context(), code, jreq)
	h.awaitJoin(socketConn, jreq)
}

// awaitJoin parks the HTTP goroutine until the room actor binds the
// connection, then hands it over to the player pumps. Registry errors are
// delivered over the socket so the requester can tell room_not_found from
// room_full.
func (h *Handler) awaitJoin(conn Conn, jreq joinRequest) {
	select {
	case res := <-jreq.resp:
		if res.err != nil {
			if data, err := json.Marshal(MakePacketError(res.err.Error())); err == nil {
				conn.Write(data)
			}
			conn.Close(res.err.Error())
			return
		}
		go writePump(res.sess)
		go readPump(res.room, res.player, res.sess)
	case <-time.After(5 * time.Second):
		conn.Close("timeout")
	}
}
