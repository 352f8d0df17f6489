package ws

import (
	"fmt"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHubServer(t *testing.T) (*StaffHub, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := NewStaffHub()
	go hub.Run()

	r := gin.New()
	// Stands in for the ws auth middleware: the owner id lands in the
	// request context the same way the verified token claims would.
	r.GET("/ws/staff", func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Query("owner"))
		c.Set("ownerId", uint(id))
		c.Set("role", "staff")
		hub.HandleWebSocket(c)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return hub, srv
}

func dialStaff(t *testing.T, srv *httptest.Server, ownerID uint) *websocket.Conn {
	t.Helper()
	url := fmt.Sprintf("%s/ws/staff?owner=%d", strings.Replace(srv.URL, "http", "ws", 1), ownerID)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForRoom(t *testing.T, hub *StaffHub, ownerID uint, n int) {
	t.Helper()
	require.Eventually(t, func() bool {
		return hub.ClientCount(ownerID) == n
	}, time.Second, 10*time.Millisecond)
}

func readFrame(t *testing.T, conn *websocket.Conn) Frame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	var f Frame
	require.NoError(t, conn.ReadJSON(&f))
	return f
}

func TestBroadcastReachesOwnRoom(t *testing.T) {
	hub, srv := newHubServer(t)

	conn := dialStaff(t, srv, 1)
	waitForRoom(t, hub, 1, 1)

	hub.BroadcastOrders(1, []map[string]any{{"id": 7, "status": "Placed"}})

	f := readFrame(t, conn)
	assert.Equal(t, EventOrderList, f.Event)
	orders, ok := f.Data.([]any)
	require.True(t, ok)
	require.Len(t, orders, 1)
	first := orders[0].(map[string]any)
	assert.Equal(t, float64(7), first["id"])
	assert.Equal(t, "Placed", first["status"])
}

func TestRoomsAreIsolated(t *testing.T) {
	hub, srv := newHubServer(t)

	mine := dialStaff(t, srv, 1)
	theirs := dialStaff(t, srv, 2)
	waitForRoom(t, hub, 1, 1)
	waitForRoom(t, hub, 2, 1)

	hub.BroadcastOrders(1, []map[string]any{{"id": 1}})

	f := readFrame(t, mine)
	assert.Equal(t, EventOrderList, f.Event)

	// The other restaurant's client must hear nothing.
	require.NoError(t, theirs.SetReadDeadline(time.Now().Add(200 * time.Millisecond)))
	var stray Frame
	err := theirs.ReadJSON(&stray)
	assert.Error(t, err)
}

func TestBroadcastFansOutToAllStaff(t *testing.T) {
	hub, srv := newHubServer(t)

	a := dialStaff(t, srv, 1)
	b := dialStaff(t, srv, 1)
	waitForRoom(t, hub, 1, 2)

	hub.BroadcastTableStatus(1, []map[string]any{{"tableNumber": 4, "status": "Occupied"}})

	for _, conn := range []*websocket.Conn{a, b} {
		f := readFrame(t, conn)
		assert.Equal(t, EventTableStatus, f.Event)
	}
}

func TestClientDisconnectLeavesRoom(t *testing.T) {
	hub, srv := newHubServer(t)

	conn := dialStaff(t, srv, 1)
	waitForRoom(t, hub, 1, 1)

	conn.Close()
	waitForRoom(t, hub, 1, 0)

	// Broadcasting into an empty room is a no-op, not a hang.
	done := make(chan struct{})
	go func() {
		hub.BroadcastOrders(1, nil)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked with no listeners")
	}
}

func TestRejectsConnectionWithoutOwnerScope(t *testing.T) {
	_, srv := newHubServer(t)

	url := strings.Replace(srv.URL, "http", "ws", 1) + "/ws/staff?owner=0"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 403, resp.StatusCode)
}
