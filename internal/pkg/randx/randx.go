/*
Package randx provides functions for generating cryptographically secure random identifiers.

It generates fixed-length Base62 session IDs and standard UUID message IDs.
*/
package randx

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

const (
	// Base62Chars defines the character set used for Base62 encoding (0-9, A-Z, a-z).
	Base62Chars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// Base62Len is the total number of characters in the Base62 character set (62).
	Base62Len = int64(len(Base62Chars))

	// SessionIDPrefix is the fixed prefix of generated session identifiers.
	SessionIDPrefix = "sess_"

	// SessionIDRawLength is the fixed length of the Base62 part of a session ID.
	SessionIDRawLength = 16
)

// SessionID generates a session identifier with the "sess_" prefix and a
// Base62-encoded random suffix, using crypto/rand.
func SessionID() (string, error) {
	result := make([]byte, SessionIDRawLength)

	for i := 0; i < SessionIDRawLength; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(Base62Len))
		if err != nil {
			return "", fmt.Errorf("failed to generate random number for session id: %v", err)
		}

		result[i] = Base62Chars[num.Int64()]
	}

	return SessionIDPrefix + string(result), nil
}

// MessageID generates a standard UUID v4 string to serve as a unique identifier
// for a WebSocket frame or chat message.
func MessageID() string {
	return uuid.New().String()
}

// IsValidSessionID checks whether the given string is a well-formed session ID:
// the "sess_" prefix followed by exactly SessionIDRawLength Base62 characters.
func IsValidSessionID(id string) bool {
	if !strings.HasPrefix(id, SessionIDPrefix) {
		return false
	}

	rawID := id[len(SessionIDPrefix):]

	if len(rawID) != SessionIDRawLength {
		return false
	}

	for _, char := range rawID {
		if !strings.ContainsRune(Base62Chars, char) {
			return false
		}
	}

	return true
}
