// Package secretary provides methods for ciphering.
package secretary

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/danilovkiri/dk_go_wishlist/internal/config"
	"github.com/danilovkiri/dk_go_wishlist/internal/service/secretary"
)

// Check interface implementation explicitly
var (
	_ secretary.Secretary = (*Secretary)(nil)
)

// ErrShortMessage is returned for tokens shorter than a nonce.
var ErrShortMessage = errors.New("ciphered message is too short")

// Secretary defines object structure and its attributes.
type Secretary struct {
	aesgcm cipher.AEAD
}

// NewSecretaryService initializes a secretary service with ciphering functionality.
func NewSecretaryService(c *config.Config) (*Secretary, error) {
	key := sha256.Sum256([]byte(c.UserKey))
	aesblock, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}
	aesgcm, err := cipher.NewGCM(aesblock)
	if err != nil {
		return nil, err
	}
	return &Secretary{aesgcm: aesgcm}, nil
}

// Encode ciphers data with a fresh nonce prepended to the result.
func (s *Secretary) Encode(data string) string {
	nonce := make([]byte, s.aesgcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		panic(err)
	}
	encoded := s.aesgcm.Seal(nonce, nonce, []byte(data), nil)
	return hex.EncodeToString(encoded)
}

// Decode deciphers data produced by Encode.
func (s *Secretary) Decode(msg string) (string, error) {
	msgBytes, err := hex.DecodeString(msg)
	if err != nil {
		return "", err
	}
	size := s.aesgcm.NonceSize()
	if len(msgBytes) < size {
		return "", ErrShortMessage
	}
	decoded, err := s.aesgcm.Open(nil, msgBytes[:size], msgBytes[size:], nil)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
