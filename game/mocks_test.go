package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Conn ---

type MockConn struct {
	mock.Mock
}

func (m *MockConn) Close(reason string) {
	m.Called(reason)
}

func (m *MockConn) Write(data []byte) error {
	args := m.Called(data)
	return args.Error(0)
}

func (m *MockConn) Read() ([]byte, error) {
	args := m.Called()
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockConn) Ping() error {
	args := m.Called()
	return args.Error(0)
}

func newQuietConn() *MockConn {
	conn := &MockConn{}
	conn.On("Close", mock.Anything).Return().Maybe()
	return conn
}

// --- WordGenerator ---

type MockWordGenerator struct {
	mock.Mock
}

func (m *MockWordGenerator) Choices(count int) []string {
	args := m.Called(count)
	return args.Get(0).([]string)
}

// --- UniqueCodeGenerator ---

type MockCodeGenerator struct {
	mock.Mock
}

func (m *MockCodeGenerator) Generate() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockCodeGenerator) Dispose(code string) {
	m.Called(code)
}

// --- PeriodicTickerChannelCreator ---

type MockPeriodicTickerChannelCreator struct {
	mock.Mock
}

func (m *MockPeriodicTickerChannelCreator) Create(duration time.Duration) <-chan time.Time {
	args := m.Called(duration)
	return args.Get(0).(chan time.Time)
}

// --- Lobby ---

type MockLobby struct {
	mock.Mock
}

func (m *MockLobby) RequestUpdateDescription(desc roomDescription) {
	m.Called(desc)
}

func (m *MockLobby) RemoveRoom(code string) {
	m.Called(code)
}

func newQuietLobby() *MockLobby {
	l := &MockLobby{}
	l.On("RequestUpdateDescription", mock.Anything).Return().Maybe()
	return l
}

func joinTestPlayer(t *testing.T, r *Room, nickname, uuid string) *Player {
	t.Helper()
	jreq := newJoinRequest(nickname, uuid, newQuietConn())
	r.handleJoinRequest(jreq)
	res := <-jreq.resp
	require.NoError(t, res.err)
	return res.player
}
