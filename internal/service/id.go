package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewRecordID returns a unique, time-derived record id such as
// "gen-1756734000000-1a2b3c4d". The millisecond prefix keeps ids roughly
// sortable; the random suffix makes them unique within a millisecond.
func NewRecordID(prefix string) string {
	suffix, _, _ := strings.Cut(uuid.NewString(), "-")
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), suffix)
}
