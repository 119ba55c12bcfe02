package utils

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

// Hands out at most n bytes per read.
type chunkReader struct {
	r io.Reader
	n int
}

func (c *chunkReader) Read(p []byte) (int, error) {
	if len(p) > c.n {
		p = p[:c.n]
	}
	return c.r.Read(p)
}

func scanAll(s *FastFileLines, r io.Reader) (lines []string) {
	for {
		line := s.Scan(r)
		if line == nil {
			return lines
		}
		lines = append(lines, string(line))
	}
}

func Test_FastFileLines(t *testing.T) {
	input := "first\nsecond line\n\nlast without newline"
	expected := []string{"first", "second line", "", "last without newline"}
	for _, chunk := range []int{1, 3, 7, 1024} {
		s := FastFileLines{Buf: make([]byte, 24)}
		lines := scanAll(&s, &chunkReader{r: strings.NewReader(input), n: chunk})
		if len(lines) != len(expected) {
			t.Fatalf("chunk %d: got %d lines %q", chunk, len(lines), lines)
		}
		for i := range expected {
			if lines[i] != expected[i] {
				t.Fatalf("chunk %d: line %d is %q, expected %q", chunk, i, lines[i], expected[i])
			}
		}
	}
}

func Test_FastFileLinesLong(t *testing.T) {
	var buf bytes.Buffer
	for i := 0; i < 10000; i++ {
		buf.WriteString(V(i))
		buf.WriteByte('\n')
	}
	s := FastFileLines{Buf: make([]byte, 64)}
	lines := scanAll(&s, &buf)
	if len(lines) != 10000 || lines[9999] != "9999" {
		t.Fatalf("got %d lines", len(lines))
	}
}

func Test_FastFileLinesTooLong(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic")
		}
	}()
	s := FastFileLines{Buf: make([]byte, 8)}
	scanAll(&s, strings.NewReader("0123456789abcdef\n"))
}

func Test_ExtractGraphName(t *testing.T) {
	cases := map[string]string{
		"data/road-usa.adj":    "road-usa",
		"rmat.24.adj":          "rmat.24",
		"/abs/path/plain":      "plain",
		"weighted.graph.w.adj": "weighted.graph.w",
	}
	for in, expected := range cases {
		if got := ExtractGraphName(in); got != expected {
			t.Errorf("%s: got %s, expected %s", in, got, expected)
		}
	}
}
