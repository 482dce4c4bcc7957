// Package flash carries one-shot user notifications across a redirect in a
// signed cookie.
package flash

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
)

const cookieName = "givers_flash"
const minSecretLen = 32

var (
	errTokenFormat = errors.New("invalid token format")
	errSignature   = errors.New("invalid signature")
)

// Sign encodes message and appends its HMAC-SHA256 signature.
func Sign(message string, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(message))
	sig := hex.EncodeToString(mac.Sum(nil))
	return base64.URLEncoding.EncodeToString([]byte(message)) + "." + sig
}

// Verify checks a token produced by Sign and returns the message.
func Verify(token string, secret []byte) (string, error) {
	parts := strings.SplitN(token, ".", 2)
	if len(parts) != 2 {
		return "", errTokenFormat
	}
	payload, err := base64.URLEncoding.DecodeString(parts[0])
	if err != nil {
		return "", err
	}

	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(parts[1])) {
		return "", errSignature
	}
	return string(payload), nil
}

// CookieName returns the name of the flash cookie.
func CookieName() string {
	return cookieName
}

// SecretBytes pads s to at least 32 bytes for use as a signing key.
func SecretBytes(s string) []byte {
	b := []byte(s)
	if len(b) < minSecretLen {
		out := make([]byte, minSecretLen)
		copy(out, b)
		return out
	}
	return b
}

// Set stores a signed message for the next request.
func Set(w http.ResponseWriter, message string, secret []byte) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    Sign(message, secret),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Pop returns the pending message, if any, and expires the cookie.
// Tampered cookies are discarded.
func Pop(w http.ResponseWriter, r *http.Request, secret []byte) (string, bool) {
	c, err := r.Cookie(cookieName)
	if err != nil {
		return "", false
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	msg, err := Verify(c.Value, secret)
	if err != nil || msg == "" {
		return "", false
	}
	return msg, true
}
