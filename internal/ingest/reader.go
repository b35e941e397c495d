package ingest

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strings"
)

// LoadKeywords reads match terms from a CSV file, one keyword in the first
// column per line. Lines starting with '#' are comments. Keywords come back
// trimmed and lowercased.
func LoadKeywords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(stripBOM(f))
	r.Comment = '#'

	var kws []string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rec) == 0 {
			continue
		}
		kw := strings.ToLower(strings.TrimSpace(rec[0]))
		if kw != "" {
			kws = append(kws, kw)
		}
	}
	return kws, nil
}

func stripBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	rdr, _, err := br.ReadRune()
	if err != nil {
		return br
	}
	if rdr != '\uFEFF' {
		br.UnreadRune()
	}
	return br
}
