package history

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const timeLayout = "2006-01-02T15:04:05"

// Encode writes one "YYYY-MM-DDTHH:MM:SS <url>" line per record.
func Encode(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)
	for _, r := range records {
		if _, err := fmt.Fprintf(bw, "%s %s\n", r.When.Local().Format(timeLayout), r.URL); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Decode reads records until EOF or the first line that does not carry a
// valid timestamp and URL. A bad line ends the list; it is not an error.
func Decode(r io.Reader) ([]Record, error) {
	var records []Record
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		rec, ok := decodeLine(line)
		if !ok {
			break
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return records, fmt.Errorf("read history: %w", err)
	}
	return records, nil
}

func decodeLine(line string) (Record, bool) {
	if len(line) < len(timeLayout)+2 || line[len(timeLayout)] != ' ' {
		return Record{}, false
	}
	when, err := time.ParseInLocation(timeLayout, line[:len(timeLayout)], time.Local)
	if err != nil || when.Year() == 0 {
		return Record{}, false
	}
	url := strings.TrimSpace(line[len(timeLayout)+1:])
	if url == "" {
		return Record{}, false
	}
	return Record{When: when, URL: url}, true
}

// Load replaces the history with the records stored at path. A missing file
// leaves the history empty.
func (h *History) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			h.Clear()
			return nil
		}
		return fmt.Errorf("open history: %w", err)
	}
	defer f.Close()
	records, err := Decode(f)
	h.replace(records)
	return err
}

// Save writes every record to path.
func (h *History) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create history directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create history: %w", err)
	}
	if err := Encode(f, h.records); err != nil {
		f.Close()
		return fmt.Errorf("write history: %w", err)
	}
	return f.Close()
}
