package uuid

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// V7 returns a new UUIDv7 in string form.
func V7() string {
	return uuid.Must(uuid.NewV7()).String()
}

// V7AtTime returns a UUIDv7 with the underlying time set to t.
func V7AtTime(t time.Time) string {
	return uuid.Must(uuid.NewV7AtTime(t)).String()
}
