// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/hostkeys/internal/logger"
	"github.com/MKhiriev/hostkeys/models"
)

// iniGeneralSection holds keys that live at the settings root.
const iniGeneralSection = "General"

// INIReader reads the Qt INI settings format used on Linux and the BSDs.
//
// Qt writes nested keys with backslashes and groups the first path
// component into a section, so registered_hosts/1/rp_key is stored as
//
//	[registered_hosts]
//	1\rp_key=@ByteArray(...)
//
// All keys are flattened to slash-separated paths on load.
type INIReader struct {
	path   string
	values map[string]string
}

// NewINIReader loads the INI file at path. A missing or unreadable file is
// reported as ErrStoreUnavailable.
func NewINIReader(path string) (*INIReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	defer f.Close()

	r, err := ParseINI(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrStoreUnavailable, path, err)
	}
	r.path = path

	return r, nil
}

// ParseINI parses Qt INI content from r.
func ParseINI(r io.Reader) (*INIReader, error) {
	reader := &INIReader{values: make(map[string]string)}

	section := ""
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == ';' || line[0] == '#' {
			continue
		}

		if line[0] == '[' {
			end := strings.LastIndexByte(line, ']')
			if end < 0 {
				continue
			}
			section = line[1:end]
			if section == iniGeneralSection {
				section = ""
				continue
			}
			if section == "%"+iniGeneralSection {
				section = iniGeneralSection
				continue
			}
			section = unescapeINIKey(section)
			continue
		}

		eq := strings.IndexByte(line, '=')
		if eq < 0 {
			continue
		}

		key := unescapeINIKey(strings.TrimSpace(line[:eq]))
		if section != "" {
			key = section + "/" + key
		}
		reader.values[key] = strings.TrimSpace(line[eq+1:])
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ini content: %w", err)
	}

	return reader, nil
}

// Backend implements SettingsReader.
func (r *INIReader) Backend() string {
	return "ini"
}

// ReadArrayLength implements SettingsReader.
func (r *INIReader) ReadArrayLength(ctx context.Context, section string) int {
	raw, ok := r.values[section+"/size"]
	if !ok {
		logger.FromContext(ctx).Debug().
			Err(ErrSectionNotFound).
			Str("func", "INIReader.ReadArrayLength").
			Str("path", r.path).
			Str("section", section).
			Msg("array size not found")
		return 0
	}

	n, ok := parseArraySize(string(unescapeINIValue(raw)))
	return checkArrayLength(ctx, "INIReader.ReadArrayLength", section, n, ok)
}

// ReadField implements SettingsReader.
func (r *INIReader) ReadField(ctx context.Context, section string, index int, field string) models.RawValue {
	key := fmt.Sprintf("%s/%d/%s", section, index+1, field)
	raw, ok := r.values[key]
	if !ok {
		logger.FromContext(ctx).Debug().
			Str("func", "INIReader.ReadField").
			Str("key", key).
			Msg("field not found")
		return models.RawValue{}
	}

	return iniRawValue(unescapeINIValue(raw))
}

// iniRawValue converts an unescaped INI value into a RawValue. Byte array
// values keep their wrapper in Text so the resolver can see it, while Bytes
// carries the Latin-1 payload exactly as QByteArray would.
func iniRawValue(units []rune) models.RawValue {
	text := string(units)

	if body, ok := strings.CutPrefix(text, "@ByteArray("); ok && strings.HasSuffix(body, ")") {
		body = body[:len(body)-1]
		return models.RawValue{
			Bytes:   latin1Bytes([]rune(body)),
			Text:    text,
			HasText: true,
		}
	}

	if strings.HasPrefix(text, "@@") {
		text = text[1:]
	}

	return models.NewTextValue(text)
}

func latin1Bytes(units []rune) []byte {
	out := make([]byte, 0, len(units))
	for _, u := range units {
		if u < 0x100 {
			out = append(out, byte(u))
			continue
		}
		out = utf8.AppendRune(out, u)
	}
	return out
}

// unescapeINIValue undoes Qt's INI value escaping. Double quotes toggle
// quoting and are dropped; backslash escapes cover the C set plus octal and
// \xHHHH code units. Unquoted surrounding whitespace is already trimmed.
func unescapeINIValue(s string) []rune {
	out := make([]rune, 0, len(s))
	in := []rune(s)

	for i := 0; i < len(in); i++ {
		c := in[i]
		switch {
		case c == '"':
			continue
		case c != '\\' || i+1 >= len(in):
			out = append(out, c)
			continue
		}

		i++
		switch e := in[i]; e {
		case 'a':
			out = append(out, '\a')
		case 'b':
			out = append(out, '\b')
		case 'f':
			out = append(out, '\f')
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case 'v':
			out = append(out, '\v')
		case 'x':
			v, n := readDigits(in[i+1:], 16, 4)
			if n == 0 {
				out = append(out, 'x')
				continue
			}
			out = append(out, v)
			i += n
		case '0', '1', '2', '3', '4', '5', '6', '7':
			v, n := readDigits(in[i:], 8, 3)
			out = append(out, v)
			i += n - 1
		default:
			// \\ \" \' \? and unknown escapes yield the character itself.
			out = append(out, e)
		}
	}

	return out
}

func readDigits(in []rune, base, limit int) (rune, int) {
	var v rune
	n := 0
	for n < len(in) && n < limit {
		d, ok := digitValue(in[n], base)
		if !ok {
			break
		}
		v = v*rune(base) + d
		n++
	}
	return v, n
}

func digitValue(c rune, base int) (rune, bool) {
	var d rune
	switch {
	case c >= '0' && c <= '9':
		d = c - '0'
	case c >= 'a' && c <= 'f':
		d = c - 'a' + 10
	case c >= 'A' && c <= 'F':
		d = c - 'A' + 10
	default:
		return 0, false
	}
	return d, int(d) < base
}

// unescapeINIKey converts a Qt INI key to a slash path. Qt percent-encodes
// special characters as %XX or %UXXXX and writes '/' as '\'.
func unescapeINIKey(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	in := []rune(s)
	for i := 0; i < len(in); i++ {
		switch c := in[i]; {
		case c == '\\':
			b.WriteByte('/')
		case c == '%' && i+1 < len(in) && in[i+1] == 'U':
			if v, n := readDigits(in[i+2:], 16, 4); n == 4 {
				b.WriteRune(v)
				i += 5
				continue
			}
			b.WriteRune(c)
		case c == '%':
			if v, n := readDigits(in[i+1:], 16, 2); n == 2 {
				b.WriteRune(v)
				i += 2
				continue
			}
			b.WriteRune(c)
		default:
			b.WriteRune(c)
		}
	}

	return b.String()
}
