package wordset

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// ScanWords reads a word list, one word per line, into a new WordSet.
// Blank lines are skipped and only the first whitespace-separated
// field of each line is used, so lists annotated with counts or
// definitions still load. Files that are not valid UTF-8 are assumed
// to be ISO 8859-1 and transformed before scanning.
func ScanWords(r io.Reader) (*WordSet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		decoder := charmap.ISO8859_1.NewDecoder()
		data, _, err = transform.Bytes(decoder, data)
		if err != nil {
			return nil, err
		}
	}
	ws := New()
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) > 0 {
			ws.Insert(fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ws, nil
}

// Load reads the word list at path.
func Load(path string) (*WordSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open word list: %w", err)
	}
	defer f.Close()
	ws, err := ScanWords(f)
	if err != nil {
		return nil, fmt.Errorf("bad word list %v: %w", path, err)
	}
	log.Debug().Str("path", path).Int("words", ws.Len()).Msg("loaded word list")
	return ws, nil
}
