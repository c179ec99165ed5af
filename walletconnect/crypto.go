package walletconnect

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
)

var errBadHmac = errors.New("inconsistent session message hmac")

func aes256Encrypt(content, key, iv []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher block: %w", err)
	}
	plain := pkcs7Pad(content, aes.BlockSize)
	out := make([]byte, len(plain))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, plain)
	return out, nil
}

func aes256Decrypt(data, key, iv []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher block: %w", err)
	}
	if len(iv) != aes.BlockSize {
		return nil, fmt.Errorf("iv is %d bytes, want %d", len(iv), aes.BlockSize)
	}
	if len(data) == 0 || len(data)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("ciphertext is not a multiple of the block size")
	}
	out := make([]byte, len(data))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, data)
	return pkcs7Unpad(out, aes.BlockSize)
}

func pkcs7Pad(b []byte, size int) []byte {
	n := size - len(b)%size
	return append(b, bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(b []byte, size int) ([]byte, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("empty plaintext")
	}
	n := int(b[len(b)-1])
	if n == 0 || n > size || n > len(b) {
		return nil, fmt.Errorf("invalid padding")
	}
	for _, c := range b[len(b)-n:] {
		if int(c) != n {
			return nil, fmt.Errorf("invalid padding")
		}
	}
	return b[:len(b)-n], nil
}

func hmacSHA256(data, key []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(data)
	return h.Sum(nil)
}

// encrypt seals a JSON-RPC message with key
func encrypt(jsonRPC string, key []byte) (*wcMessagePayload, error) {
	iv := make([]byte, aes.BlockSize)
	if _, err := rand.Read(iv); err != nil {
		return nil, fmt.Errorf("generate iv: %w", err)
	}
	data, err := aes256Encrypt([]byte(jsonRPC), key, iv)
	if err != nil {
		return nil, err
	}
	unsigned := append(append([]byte{}, data...), iv...)
	return &wcMessagePayload{
		Data: hex.EncodeToString(data),
		IV:   hex.EncodeToString(iv),
		Hmac: hex.EncodeToString(hmacSHA256(unsigned, key)),
	}, nil
}

// decrypt verifies and opens a payload sealed with key
func decrypt(p *wcMessagePayload, key []byte) (string, error) {
	iv, err := hex.DecodeString(p.IV)
	if err != nil {
		return "", fmt.Errorf("decode iv hex: %w", err)
	}
	data, err := hex.DecodeString(p.Data)
	if err != nil {
		return "", fmt.Errorf("decode cipher hex: %w", err)
	}
	mac, err := hex.DecodeString(p.Hmac)
	if err != nil {
		return "", fmt.Errorf("decode hmac hex: %w", err)
	}
	unsigned := append(append([]byte{}, data...), iv...)
	if !hmac.Equal(mac, hmacSHA256(unsigned, key)) {
		return "", errBadHmac
	}
	plain, err := aes256Decrypt(data, key, iv)
	if err != nil {
		return "", fmt.Errorf("aes256 decrypt: %w", err)
	}
	return string(plain), nil
}
