package walletconnect

import (
	"encoding/json"
	"fmt"
)

// ClientMeta describes this application to the wallet
type ClientMeta struct {
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Icons       []string `json:"icons"`
	Name        string   `json:"name"`
}

// DefaultMeta is shown in the wallet when pairing
var DefaultMeta = ClientMeta{
	Name:        "QuantumGuard Wallet",
	Description: "Quantum-Resistant Algorand Wallet with AI Guardian",
	URL:         "https://quantumguard.app",
	Icons:       []string{"https://quantumguard.app/favicon.ico"},
}

type peer struct {
	PeerID   string     `json:"peerId"`
	PeerMeta ClientMeta `json:"peerMeta"`
	ChainID  any        `json:"chainId"`
}

type sessionUpdate struct {
	Approved bool     `json:"approved"`
	ChainID  any      `json:"chainId"`
	Accounts []string `json:"accounts"`
}

// wcMessage is the relay envelope
type wcMessage struct {
	Topic string `json:"topic"`
	// pub, sub or ack
	Type    string `json:"type"`
	Payload string `json:"payload"`
	Silent  bool   `json:"silent"`
}

func newWCMessageFromBytes(data []byte) (*wcMessage, error) {
	var msg wcMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("unmarshal relay message: %w", err)
	}
	return &msg, nil
}

func (msg *wcMessage) Marshal() []byte {
	b, _ := json.Marshal(msg)
	return b
}

// wcMessagePayload is an encrypted JSON-RPC message, all fields hex encoded
type wcMessagePayload struct {
	Data string `json:"data"`
	Hmac string `json:"hmac"`
	IV   string `json:"iv"`
}

func newWCMessagePayloadFromBytes(data []byte) (*wcMessagePayload, error) {
	var payload wcMessagePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("unmarshal relay payload: %w", err)
	}
	return &payload, nil
}

func (p *wcMessagePayload) Marshal() string {
	b, _ := json.Marshal(p)
	return string(b)
}

type jsonRPCRequest struct {
	ID      int64  `json:"id"`
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

func newJSONRPCRequest(id int64, method string, params ...any) *jsonRPCRequest {
	r := &jsonRPCRequest{
		ID:      id,
		JSONRPC: "2.0",
		Method:  method,
		Params:  []any{},
	}
	if len(params) > 0 {
		r.Params = params
	}
	return r
}

func (r *jsonRPCRequest) Marshal() string {
	b, _ := json.Marshal(r)
	return string(b)
}
