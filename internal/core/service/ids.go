package service

import (
	"encoding/hex"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/zeebo/blake3"
)

// clock returns the current instant at the millisecond resolution records
// have always been stored with.
var clock = func() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// newID returns a time-ordered identifier (UUIDv7). Two records created in
// the same millisecond still get distinct ids.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return strconv.FormatInt(time.Now().UnixNano(), 10)
	}
	return id.String()
}

// versionOf returns the content version used for If-Match checks.
func versionOf(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	sum := blake3.Sum256(raw)
	return hex.EncodeToString(sum[:12])
}
