// Package ldif renders entries and modifications as LDIF (RFC 2849).
package ldif

import (
	"bufio"
	"encoding/base64"
	"io"
	"strings"

	"github.com/KilimcininKorOglu/obaentry/internal/attrs"
	"github.com/KilimcininKorOglu/obaentry/internal/entry"
)

// LineWidth is the column at which long lines are folded.
const LineWidth = 76

// Format writes a content record for dn. Attributes follow in store order;
// the dn attribute and null values are skipped.
func Format(w io.Writer, dn string, store *attrs.Store) error {
	bw := bufio.NewWriter(w)

	writeLine(bw, "dn", dn)
	store.Range(func(key string, v attrs.Value) bool {
		if strings.EqualFold(key, entry.DNAttribute) {
			return true
		}
		for _, s := range v.Values() {
			writeLine(bw, key, s)
		}
		return true
	})

	return bw.Flush()
}

// FormatChanges writes a changetype: modify record for dn.
func FormatChanges(w io.Writer, dn string, mods []entry.Modification) error {
	bw := bufio.NewWriter(w)

	writeLine(bw, "dn", dn)
	writeLine(bw, "changetype", "modify")
	for _, m := range mods {
		switch m.Operation {
		case entry.ModAdd:
			writeLine(bw, "add", m.Attribute)
		case entry.ModReplace:
			writeLine(bw, "replace", m.Attribute)
		case entry.ModRemove:
			writeLine(bw, "delete", m.Attribute)
		}
		for _, s := range m.Values {
			writeLine(bw, m.Attribute, s)
		}
		bw.WriteString("-\n")
	}

	return bw.Flush()
}

// String returns the content record of dn as a string.
func String(dn string, store *attrs.Store) string {
	var sb strings.Builder
	_ = Format(&sb, dn, store)
	return sb.String()
}

func writeLine(w *bufio.Writer, name, value string) {
	var line string
	if IsSafe(value) {
		line = name + ": " + value
	} else {
		line = name + ":: " + base64.StdEncoding.EncodeToString([]byte(value))
	}
	fold(w, line)
}

// fold writes line, continuing it on lines that start with a space once
// it exceeds LineWidth.
func fold(w *bufio.Writer, line string) {
	width := LineWidth
	for len(line) > width {
		w.WriteString(line[:width])
		w.WriteString("\n ")
		line = line[width:]
		width = LineWidth - 1
	}
	w.WriteString(line)
	w.WriteByte('\n')
}

// IsSafe reports whether s can be written as a plain LDIF value.
func IsSafe(s string) bool {
	if s == "" {
		return true
	}
	switch s[0] {
	case ' ', ':', '<':
		return false
	}
	if s[len(s)-1] == ' ' {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == 0 || c == '\n' || c == '\r' || c >= 0x80 {
			return false
		}
	}
	return true
}
