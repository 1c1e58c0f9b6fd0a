package utils

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const basicPrefix = "Basic "

// EncodeBasicToken builds the opaque session token from a username and
// secret. The encoding is reversible: DecodeBasicToken reproduces the
// original pair. The value doubles as an Authorization header.
func EncodeBasicToken(username, secret string) string {
	return basicPrefix + base64.StdEncoding.EncodeToString([]byte(username+":"+secret))
}

// DecodeBasicToken recovers the username/secret pair from a token
// produced by EncodeBasicToken (or any standard Basic credential).
func DecodeBasicToken(token string) (string, string, error) {
	if !strings.HasPrefix(token, basicPrefix) {
		return "", "", fmt.Errorf("not a basic credential")
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(token[len(basicPrefix):]))
	if err != nil {
		return "", "", fmt.Errorf("failed to decode basic credential: %w", err)
	}
	username, secret, found := strings.Cut(string(raw), ":")
	if !found {
		return "", "", fmt.Errorf("malformed basic credential")
	}
	return username, secret, nil
}
