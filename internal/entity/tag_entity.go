package entity

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

const DefaultTagColor = "#808080"

var hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidHexColor reports whether s is a #rgb or #rrggbb color code.
func ValidHexColor(s string) bool {
	return hexColorRe.MatchString(s)
}

type Tag struct {
	Id        uuid.UUID
	Name      string // unique, case-sensitive
	Color     string // hex color code
	CreatedAt time.Time
}
