package game

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mockTickerCreator := &MockPeriodicTickerChannelCreator{}
	mockTickerCreator.On("Create", time.Second).Return(make(chan time.Time))
	mockTickerCreator.On("Create", time.Second*30).Return(make(chan time.Time))

	l := NewLobby(NewCodeGenerator(), mockTickerCreator, zerolog.Nop())
	started := make(chan struct{})
	go l.LobbyActor(started)
	<-started

	h := NewHandler(l, NewWordBank(), DefaultTimings(), []string{"*"}, zerolog.Nop())
	router := gin.New()
	h.Register(router)
	return router
}

func TestListRoomsHandler_EmptyLobby(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/game/rooms", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestCreateRoomHandler_RequiresNickname(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/game/create?rounds=3", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestJoinRoomHandler_RequiresNickname(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/game/join/abc123", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
