// Package session builds WalletConnect v1 pairing sessions and renders their
// URIs as scannable codes.
package session

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"math/rand"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mdp/qrterminal/v3"
)

// RenderFailedText replaces the image when the URI could not be rendered
const RenderFailedText = "Error generating QR code"

const (
	idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	idRandLen  = 11
	keyLen     = 32
)

// Session is one pairing attempt. The URI stays valid even if rendering failed.
type Session struct {
	ID        string
	URI       string
	Bridge    string
	QRImage   string
	QRText    string
	RenderErr error
}

// NewID returns a base-36 id made of a random part and the current
// millisecond timestamp. It is unique enough for pairing topics, nothing more.
func NewID() string {
	var b strings.Builder
	for i := 0; i < idRandLen; i++ {
		b.WriteByte(idAlphabet[rand.Intn(len(idAlphabet))])
	}
	b.WriteString(strconv.FormatInt(time.Now().UnixMilli(), 36))
	return b.String()
}

// BuildURI formats the pairing URI for id on bridge
func BuildURI(id, bridge string) string {
	return fmt.Sprintf("wc:%s@1?bridge=%s&key=%s", id, url.QueryEscape(bridge), uriKey(id))
}

func uriKey(id string) string {
	if len(id) > keyLen {
		return id[:keyLen]
	}
	return id
}

// New creates a fresh session for bridge without rendering it
func New(bridge string) Session {
	id := NewID()
	return Session{
		ID:     id,
		URI:    BuildURI(id, bridge),
		Bridge: bridge,
	}
}

// Generate creates a fresh session for bridge and renders its codes
func Generate(bridge string) Session {
	s := New(bridge)

	img, err := RenderDataURL(s.URI, DefaultImageOptions())
	if err != nil {
		s.QRImage = RenderFailedText
		s.RenderErr = err
		return s
	}
	s.QRImage = img
	s.QRText = RenderTerminal(s.URI)
	return s
}

// Key is the symmetric key shared with the wallet, derived from the URI key
func (s Session) Key() []byte {
	sum := sha256.Sum256([]byte(uriKey(s.ID)))
	return sum[:]
}

// Topic is the handshake topic the session request is published on
func (s Session) Topic() string {
	return s.ID
}

// RenderTerminal draws uri with half blocks. Returns "" if it cannot be encoded.
func RenderTerminal(uri string) (out string) {
	defer func() {
		if recover() != nil {
			out = ""
		}
	}()
	var buf bytes.Buffer
	qrterminal.GenerateHalfBlock(uri, qrterminal.M, &buf)
	return buf.String()
}
