package queries

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"stokship/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100

	cursorVersion = "v1"
	cursorSep     = "|"
)

// Cursor is an opaque keyset position over (created_at DESC, id DESC).
type Cursor struct {
	After string `json:"after,omitempty"`
}

// EncodeAfterCursor keeps microsecond precision to match timestamptz.
func EncodeAfterCursor(t time.Time, id uuid.UUID) string {
	raw := strings.Join([]string{cursorVersion, strconv.FormatInt(t.UnixMicro(), 10), id.String()}, cursorSep)
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeAfterCursor errors are marked as validation failures.
func DecodeAfterCursor(cursor string) (time.Time, uuid.UUID, error) {
	if cursor == "" {
		return time.Time{}, uuid.Nil, invalidCursor(errs.New("cursor is empty"))
	}

	decoded, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, invalidCursor(errs.Wrap(err, "cursor encoding"))
	}

	parts := strings.Split(string(decoded), cursorSep)
	if len(parts) != 3 {
		return time.Time{}, uuid.Nil, invalidCursor(errs.New("cursor has unexpected shape"))
	}
	if parts[0] != cursorVersion {
		return time.Time{}, uuid.Nil, invalidCursor(errs.Newf("unsupported cursor version %q", parts[0]))
	}

	micros, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return time.Time{}, uuid.Nil, invalidCursor(errs.Wrap(err, "cursor timestamp"))
	}
	id, err := uuid.Parse(parts[2])
	if err != nil {
		return time.Time{}, uuid.Nil, invalidCursor(errs.Wrap(err, "cursor id"))
	}

	return time.UnixMicro(micros).UTC(), id, nil
}

func invalidCursor(err error) error {
	return errs.Mark(err, errs.ErrDomainValidation)
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return min(limit, MaxListLimit)
}
