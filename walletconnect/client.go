// Package walletconnect pairs with a mobile wallet over a WalletConnect v1
// bridge and returns the accounts it approves.
package walletconnect

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/tidwall/gjson"
	"go.uber.org/atomic"

	"quantumguard-tui/session"
	"quantumguard-tui/wallet"
)

// DefaultReadTimeout bounds the wait for the wallet to answer the pairing request
const DefaultReadTimeout = 5 * time.Minute

var (
	// ErrRejected is returned when the user declines the session in the wallet
	ErrRejected = errors.New("User rejected request")
	// ErrNoAccounts is returned when the wallet approves without any account
	ErrNoAccounts = errors.New("No accounts returned from wallet provider")
	// ErrBusy is returned when Connect is called while another pairing runs
	ErrBusy = errors.New("a pairing request is already in progress")

	errSessionClosed = errors.New("session closed")
	errPeerEnded     = errors.New("wallet ended the session")
)

// Client is a wallet.Provider backed by a WalletConnect v1 bridge
type Client struct {
	bridgeURL   string
	meta        ClientMeta
	readTimeout time.Duration
	logger      *log.Logger
	dialer      *websocket.Dialer

	pairing   atomic.Bool
	payloadID atomic.Int64

	mu       sync.Mutex
	conn     *websocket.Conn
	clientID string
	peerID   string
	key      []byte
}

// Option configures a Client
type Option func(*Client)

// WithReadTimeout overrides DefaultReadTimeout
func WithReadTimeout(d time.Duration) Option {
	return func(c *Client) { c.readTimeout = d }
}

// WithLogger sets the logger used for protocol traces
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithMeta sets the metadata shown by the wallet
func WithMeta(m ClientMeta) Option {
	return func(c *Client) { c.meta = m }
}

// NewClient returns a client for the bridge at bridgeURL
func NewClient(bridgeURL string, opts ...Option) *Client {
	c := &Client{
		bridgeURL:   bridgeURL,
		meta:        DefaultMeta,
		readTimeout: DefaultReadTimeout,
		logger:      log.New(io.Discard),
		dialer:      websocket.DefaultDialer,
	}
	c.payloadID.Store(time.Now().UnixNano() / 1000)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Type implements wallet.Provider
func (c *Client) Type() wallet.WalletType {
	return wallet.RemoteProvider
}

// Connect publishes a session request and waits for the wallet to answer.
// A session is generated when req carries none.
func (c *Client) Connect(ctx context.Context, req wallet.Request) ([]string, error) {
	if !c.pairing.CAS(false, true) {
		return nil, ErrBusy
	}
	defer c.pairing.Store(false)

	var sess session.Session
	if req.Session != nil {
		sess = *req.Session
	} else {
		sess = session.New(c.bridgeURL)
	}
	if sess.Bridge == "" {
		sess.Bridge = c.bridgeURL
	}

	// only one live session per client
	c.closeConn()

	conn, err := c.dial(ctx, sess.Bridge)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("pairing aborted: %w", ctxErr)
		}
		return nil, err
	}

	c.mu.Lock()
	c.conn = conn
	c.clientID = uuid.NewString()
	c.peerID = ""
	c.key = sess.Key()
	c.mu.Unlock()

	stop := context.AfterFunc(ctx, func() {
		_ = conn.Close()
	})
	defer stop()

	accounts, err := c.pair(sess)
	if err != nil {
		c.closeConn()
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("pairing aborted: %w", ctxErr)
		}
		return nil, err
	}
	return accounts, nil
}

func (c *Client) pair(sess session.Session) ([]string, error) {
	if err := c.subscribe(c.clientID); err != nil {
		return nil, err
	}
	if err := c.createSessionRequest(sess.Topic()); err != nil {
		return nil, err
	}
	return c.readSessionResponse()
}

// Disconnect tells the wallet the session is over and closes the socket
func (c *Client) Disconnect() error {
	c.mu.Lock()
	conn, peerID := c.conn, c.peerID
	c.mu.Unlock()
	if conn == nil {
		return nil
	}
	defer c.closeConn()
	if peerID == "" {
		return nil
	}

	rpc := newJSONRPCRequest(c.nextID(), "wc_sessionUpdate", sessionUpdate{Approved: false})
	return c.publish(peerID, rpc)
}

func (c *Client) closeConn() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
	}
	c.peerID = ""
}

func (c *Client) nextID() int64 {
	return c.payloadID.Inc()
}

func (c *Client) dial(ctx context.Context, bridge string) (*websocket.Conn, error) {
	wsURL, err := WebSocketURL(bridge)
	if err != nil {
		return nil, err
	}
	conn, _, err := c.dialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("dial bridge %s: %w", bridge, err)
	}
	c.logger.Debug("Bridge connected", "url", wsURL)
	return conn, nil
}

// WebSocketURL maps a bridge URL to its websocket endpoint
func WebSocketURL(bridge string) (string, error) {
	u, err := url.Parse(bridge)
	if err != nil {
		return "", fmt.Errorf("parse bridge url: %w", err)
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	case "http":
		u.Scheme = "ws"
	case "ws", "wss":
	default:
		return "", fmt.Errorf("unsupported bridge scheme %q", u.Scheme)
	}
	q := u.Query()
	q.Set("protocol", "wc")
	q.Set("version", "1")
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c *Client) send(msg wcMessage) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return errSessionClosed
	}
	if err := c.conn.WriteMessage(websocket.TextMessage, msg.Marshal()); err != nil {
		return fmt.Errorf("write bridge message: %w", err)
	}
	return nil
}

func (c *Client) subscribe(topic string) error {
	c.logger.Debug("Subscribing", "topic", topic)
	return c.send(wcMessage{Topic: topic, Type: "sub", Silent: true})
}

func (c *Client) ack(topic string) error {
	return c.send(wcMessage{Topic: topic, Type: "ack", Silent: true})
}

func (c *Client) publish(topic string, rpc *jsonRPCRequest) error {
	payload, err := encrypt(rpc.Marshal(), c.key)
	if err != nil {
		return err
	}
	c.logger.Debug("Publishing", "topic", topic, "method", rpc.Method)
	return c.send(wcMessage{Topic: topic, Type: "pub", Payload: payload.Marshal(), Silent: true})
}

func (c *Client) createSessionRequest(topic string) error {
	rpc := newJSONRPCRequest(c.nextID(), "wc_sessionRequest", peer{
		PeerID:   c.clientID,
		PeerMeta: c.meta,
	})
	return c.publish(topic, rpc)
}

// readResponse waits for the next message on our topic and decrypts it
func (c *Client) readResponse() (string, error) {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		return "", errSessionClosed
	}

	if err := conn.SetReadDeadline(time.Now().Add(c.readTimeout)); err != nil {
		return "", fmt.Errorf("set bridge read deadline: %w", err)
	}
	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return "", fmt.Errorf("bridge closed the connection: %w", err)
			}
			return "", fmt.Errorf("read session response: %w", err)
		}
		if msgType != websocket.TextMessage {
			continue
		}

		msg, err := newWCMessageFromBytes(data)
		if err != nil {
			return "", err
		}
		if msg.Type != "pub" || msg.Topic != c.clientID {
			continue
		}
		if err := c.ack(msg.Topic); err != nil {
			return "", err
		}

		p, err := newWCMessagePayloadFromBytes([]byte(msg.Payload))
		if err != nil {
			return "", err
		}
		rpc, err := decrypt(p, c.key)
		if err != nil {
			return "", err
		}
		if sessionClosed(rpc) {
			return "", errPeerEnded
		}
		return rpc, nil
	}
}

// sessionClosed reports whether rpc is a wc_sessionUpdate ending the session
func sessionClosed(rpc string) bool {
	if gjson.Get(rpc, "method").String() != "wc_sessionUpdate" {
		return false
	}
	approved := gjson.Get(rpc, "params.0.approved")
	return approved.Exists() && !approved.Bool()
}

func (c *Client) readSessionResponse() ([]string, error) {
	resp, err := c.readResponse()
	if err != nil {
		if errors.Is(err, errPeerEnded) {
			return nil, ErrRejected
		}
		return nil, err
	}
	c.logger.Debug("Session response", "payload", resp)

	if e := gjson.Get(resp, "error"); e.Exists() {
		msg := e.Get("message").String()
		if msg == "" {
			msg = e.String()
		}
		if strings.Contains(strings.ToLower(msg), "rejected") {
			return nil, ErrRejected
		}
		return nil, fmt.Errorf("wallet error: %s", msg)
	}

	result := gjson.Get(resp, "result")
	if !result.Get("approved").Bool() {
		return nil, ErrRejected
	}

	var accounts []string
	if err := json.Unmarshal([]byte(result.Get("accounts").Raw), &accounts); err != nil || len(accounts) == 0 {
		return nil, ErrNoAccounts
	}

	peerID := result.Get("peerId").String()
	c.mu.Lock()
	c.peerID = peerID
	c.mu.Unlock()

	c.logger.Info("Wallet approved session", "accounts", len(accounts), "peer", peerID)
	return accounts, nil
}
