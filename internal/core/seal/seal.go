// Package seal encodes credential secrets for the persisted record
//
// Plain values are form-escaped. Sealed values are "enc:v1:" followed by
// base64(nonce || AES-256-GCM ciphertext) with the key derived from a
// passphrase through HKDF-SHA256. Neither encoding can produce ',' or a
// newline, and a form-escaped value never starts with the sealed prefix,
// so both kinds can live in one file.
package seal

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"io"
	"net/url"
	"strings"

	perr "wifiman/internal/platform/errors"

	"golang.org/x/crypto/hkdf"
)

const (
	// Prefix marks sealed values
	Prefix = "enc:v1:"

	keySize = 32
	salt    = "wifiman/credstore"
	info    = "secret-at-rest v1"
)

// Codec turns secrets into record-safe text and back
type Codec interface {
	Seal(secret string) (string, error)
	Open(field string) (string, error)
	Encrypting() bool
}

// New returns a sealing codec when passphrase is non-empty, else a plain one
func New(passphrase string) (Codec, error) {
	if passphrase == "" {
		return Plain{}, nil
	}
	return NewAESGCM(passphrase)
}

// Plain form-escapes secrets; it refuses sealed values since it has no key
type Plain struct{}

// Seal implements Codec
func (Plain) Seal(secret string) (string, error) { return url.QueryEscape(secret), nil }

// Open implements Codec
func (Plain) Open(field string) (string, error) {
	if strings.HasPrefix(field, Prefix) {
		return "", perr.Malformedf("sealed value but no secret key configured")
	}
	return openPlain(field)
}

// Encrypting implements Codec
func (Plain) Encrypting() bool { return false }

func openPlain(field string) (string, error) {
	s, err := url.QueryUnescape(field)
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeMalformedRecord, "decode secret")
	}
	return s, nil
}

// AESGCM seals with AES-256-GCM and still opens plain values so an
// unencrypted record migrates on its next save
type AESGCM struct {
	aead cipher.AEAD
	rand io.Reader
}

// NewAESGCM derives the key from passphrase
func NewAESGCM(passphrase string) (*AESGCM, error) {
	key := make([]byte, keySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(passphrase), []byte(salt), []byte(info)), key); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "derive key")
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "aes cipher")
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "gcm")
	}
	return &AESGCM{aead: aead, rand: rand.Reader}, nil
}

// Seal implements Codec
func (c *AESGCM) Seal(secret string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(c.rand, nonce); err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeUnknown, "nonce")
	}
	out := c.aead.Seal(nonce, nonce, []byte(secret), nil)
	return Prefix + base64.StdEncoding.EncodeToString(out), nil
}

// Open implements Codec
func (c *AESGCM) Open(field string) (string, error) {
	enc, ok := strings.CutPrefix(field, Prefix)
	if !ok {
		return openPlain(field)
	}
	raw, err := base64.StdEncoding.DecodeString(enc)
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeMalformedRecord, "decode sealed secret")
	}
	ns := c.aead.NonceSize()
	if len(raw) < ns+c.aead.Overhead() {
		return "", perr.Malformedf("sealed secret too short")
	}
	plain, err := c.aead.Open(nil, raw[:ns], raw[ns:], nil)
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeMalformedRecord, "open sealed secret")
	}
	return string(plain), nil
}

// Encrypting implements Codec
func (c *AESGCM) Encrypting() bool { return true }
