// Package layout renders the windows of a group into one fixed-width,
// pango-decorated status line.
package layout

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mj1618/groupie/internal/config"
	"github.com/mj1618/groupie/internal/model"
)

// Ellipsis marks a truncated window body.
const Ellipsis = "..."

// FormatLine renders windows, already in display order, as a single line.
// With no windows it returns cfg.EmptyText verbatim.
func FormatLine(windows []model.Window, cfg config.Config) string {
	if len(windows) == 0 {
		return cfg.EmptyText
	}
	width := WindowWidth(cfg.Width, utf8.RuneCountInString(cfg.Separator), len(windows))

	parts := make([]string, len(windows))
	for i, w := range windows {
		parts[i] = formatWindow(w, cfg, width)
	}
	return strings.Join(parts, cfg.Separator)
}

// WindowWidth is the number of visible characters each of count windows may
// use once the separators are paid for. Widths below the ellipsis length are
// raised to it: callers must provide at least that much room per window or
// the line grows past total.
func WindowWidth(total, separatorLen, count int) int {
	if count <= 0 {
		return total
	}
	width := (total - separatorLen*(count-1)) / count
	if width < len(Ellipsis) {
		return len(Ellipsis)
	}
	return width
}

// Body is the undecorated text for w: "app: title", with a trailing
// " - app" removed from the title.
func Body(w model.Window) string {
	title := strings.TrimSuffix(w.Title, " - "+w.AppName)
	return w.AppName + ": " + title
}

// Fit truncates or centers text to width visible characters.
func Fit(text string, width int) string {
	n := VisibleLen(text)
	if n > width {
		return truncateVisible(text, width-len(Ellipsis)) + Ellipsis
	}
	padding := strings.Repeat(" ", (width-n)/2)
	return padding + text + padding
}

// Sanitize removes angle brackets so text cannot open or close markup.
func Sanitize(text string) string {
	return strings.Map(func(r rune) rune {
		if r == '<' || r == '>' {
			return -1
		}
		return r
	}, text)
}

// VisibleLen counts the printable ASCII characters in text. Other characters
// have no fixed advance width on the bar and are not counted.
func VisibleLen(text string) int {
	n := 0
	for _, r := range text {
		if isVisible(r) {
			n++
		}
	}
	return n
}

func isVisible(r rune) bool {
	return r >= ' ' && r <= '~'
}

// truncateVisible keeps text up to its n-th visible character, cutting on
// rune boundaries.
func truncateVisible(text string, n int) string {
	var b strings.Builder
	count := 0
	for _, r := range text {
		if isVisible(r) {
			if count == n {
				break
			}
			count++
		}
		b.WriteRune(r)
	}
	return b.String()
}

func formatWindow(w model.Window, cfg config.Config, width int) string {
	text := Sanitize(Fit(Body(w), width))
	background := cfg.BackgroundColor
	if w.Active {
		text = "<b>" + text + "</b>"
		background = cfg.ActiveBackgroundColor
	}
	return fmt.Sprintf(`<tt><span line_height="%s" background="%s"> %s </span></tt>`,
		strconv.FormatFloat(cfg.LineHeight, 'f', -1, 64), background, text)
}
