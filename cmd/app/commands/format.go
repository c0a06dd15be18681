package commands

import (
	"fmt"
	"io"
	"log/slog"
	"unicode/utf8"

	"github.com/allisson/cardshield/internal/mask"
)

// RunFormat applies pattern to value and prints the result. With unformat the
// value is treated as masked input and the raw characters are printed instead.
// With relax every placeholder of the pattern accepts any character.
func RunFormat(logger *slog.Logger, writer io.Writer, pattern, value string, unformat, relax bool) error {
	m := mask.Mask(pattern)
	if m.IsEmpty() {
		return fmt.Errorf("mask is required")
	}
	if relax {
		m = m.Relax()
	}

	if unformat {
		_, _ = fmt.Fprintln(writer, m.Unformat(value))
		return nil
	}

	if n := utf8.RuneCountInString(value); n > m.MaxLength() {
		logger.Warn("value exceeds mask capacity and will be truncated",
			slog.Int("length", n),
			slog.Int("max_length", m.MaxLength()),
		)
	}
	if !m.Matches(value) {
		logger.Warn("value contains characters the mask does not accept")
	}

	_, _ = fmt.Fprintln(writer, m.Format(value))
	return nil
}
