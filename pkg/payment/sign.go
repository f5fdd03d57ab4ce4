package payment

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrInvalidSignature = errors.New("invalid ipn signature")

// VerifyIPN checks the HMAC-SHA512 signature the provider computes over the
// canonical form of the payload: recursively key-sorted, compactly
// serialized JSON. Comparison is timing-safe.
func (c *Client) VerifyIPN(body []byte, signature string) error {
	expected, err := SignBody(body, c.ipnSecret)
	if err != nil {
		return err
	}
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrInvalidSignature
	}
	return nil
}

// SignBody returns the hex HMAC-SHA512 of the canonicalized payload.
func SignBody(body []byte, secret string) (string, error) {
	canonical, err := canonicalize(body)
	if err != nil {
		return "", err
	}
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(canonical)
	return hex.EncodeToString(mac.Sum(nil)), nil
}

// canonicalize re-serializes the JSON payload compactly. encoding/json
// emits map keys in sorted order at every nesting level, which is exactly
// the canonical form the provider signs.
func canonicalize(body []byte) ([]byte, error) {
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse ipn payload: %w", err)
	}
	canonical, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize ipn payload: %w", err)
	}
	return canonical, nil
}
