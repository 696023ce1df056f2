package plot

import (
	"strings"

	"github.com/google/uuid"
)

// Figure is a rendered chart held in memory until a gallery writes it out.
type Figure struct {
	ID    string
	Name  string
	Title string
	PNG   []byte
}

func newFigure(title string, png []byte) *Figure {
	f := &Figure{ID: uuid.NewString(), Title: title, PNG: png}
	f.Name = slug(title)
	if f.Name == "" {
		f.Name = f.ID
	}
	return f
}

// slug converts a figure title into a safe file name fragment.
func slug(s string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(r)
		default:
			pending = true
		}
	}
	return b.String()
}
