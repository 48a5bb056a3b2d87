package network

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/klauspost/compress/flate"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/homestead/snapshot"
)

// ConnState represents connection lifecycle state
type ConnState uint32

const (
	StateDisconnected ConnState = iota
	StateConnecting
	StateConnected
	StateDisconnecting
)

const sendQueueSize = 64

// Client maintains the replication socket: it applies table snapshots into
// the store on the read side and drains a bounded send queue of reducer
// calls on the write side. Reducer calls are fire-and-forget; failures are
// logged and never surfaced past this boundary
type Client struct {
	url   string
	name  string
	store *snapshot.Store
	log   *logrus.Entry

	conn  *websocket.Conn
	state atomic.Uint32

	// identity assigned by the WELCOME message
	identity atomic.Value // string

	sendCh    chan Envelope
	closeCh   chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup

	// PlacementError receives the latest placement reducer failure, for
	// the placement preview to display. Buffered; stale values are dropped
	PlacementError chan string
}

// NewClient creates a client that will feed store
func NewClient(url, playerName string, store *snapshot.Store, log *logrus.Logger) *Client {
	return &Client{
		url:            url,
		name:           playerName,
		store:          store,
		log:            log.WithField("component", "network"),
		sendCh:         make(chan Envelope, sendQueueSize),
		closeCh:        make(chan struct{}),
		PlacementError: make(chan string, 1),
	}
}

// Connect dials the replication service, performs the hello handshake, and
// starts the read and write pumps
func (c *Client) Connect() error {
	c.state.Store(uint32(StateConnecting))

	conn, _, err := websocket.DefaultDialer.Dial(c.url, nil)
	if err != nil {
		c.state.Store(uint32(StateDisconnected))
		return fmt.Errorf("dial %s: %w", c.url, err)
	}
	c.conn = conn

	if err := conn.WriteJSON(Envelope{Type: MsgHello, PlayerName: c.name}); err != nil {
		conn.Close()
		c.state.Store(uint32(StateDisconnected))
		return fmt.Errorf("hello: %w", err)
	}

	c.state.Store(uint32(StateConnected))
	c.wg.Add(2)
	go c.readPump()
	go c.writePump()
	return nil
}

// Close tears the connection down and waits for both pumps to exit
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		c.state.Store(uint32(StateDisconnecting))
		close(c.closeCh)
		if c.conn != nil {
			c.conn.Close()
		}
		c.wg.Wait()
		c.state.Store(uint32(StateDisconnected))
	})
}

// State returns the connection lifecycle state
func (c *Client) State() ConnState {
	return ConnState(c.state.Load())
}

// Identity returns the identity assigned at welcome, empty until then
func (c *Client) Identity() string {
	if v := c.identity.Load(); v != nil {
		return v.(string)
	}
	return ""
}

func (c *Client) readPump() {
	defer c.wg.Done()
	for {
		var env Envelope
		if err := c.conn.ReadJSON(&env); err != nil {
			select {
			case <-c.closeCh:
			default:
				c.log.WithError(err).Warn("read pump terminated")
			}
			return
		}
		c.handle(env)
	}
}

func (c *Client) handle(env Envelope) {
	switch env.Type {
	case MsgWelcome:
		c.identity.Store(env.Identity)
		c.log.WithField("identity", env.Identity).Info("connected")
	case MsgTableUpdate:
		rows := env.Rows
		if env.Compressed {
			var err error
			rows, err = inflate(env.RowsDeflate)
			if err != nil {
				c.log.WithField("table", env.Table).WithError(err).Warn("inflate failed")
				return
			}
		}
		if err := c.store.Apply(env.Table, rows); err != nil {
			c.log.WithField("table", env.Table).WithError(err).Warn("table update dropped")
		}
	case MsgReducerErr:
		c.log.WithFields(logrus.Fields{
			"reducer": env.Reducer,
			"error":   env.Error,
		}).Warn("reducer rejected")
		if isPlacementReducer(env.Reducer) {
			select {
			case c.PlacementError <- env.Error:
			default:
			}
		}
	default:
		c.log.WithField("type", env.Type).Debug("unhandled message")
	}
}

func (c *Client) writePump() {
	defer c.wg.Done()
	for {
		select {
		case <-c.closeCh:
			return
		case env := <-c.sendCh:
			c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
			if err := c.conn.WriteJSON(env); err != nil {
				c.log.WithField("reducer", env.Reducer).WithError(err).Warn("send failed")
			}
		}
	}
}

// inflate decompresses a raw deflate payload
func inflate(data []byte) (json.RawMessage, error) {
	r := flate.NewReader(bytes.NewReader(data))
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("inflate: %w", err)
	}
	return out, nil
}
