package utils

import (
	"bytes"
	"io"
	"math"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

func init() {
	checkCompiler()
}

// Enforces a 64bit machine due to assumptions about size of ints.
func checkCompiler() {
	myInt := int(math.MaxInt64) // Shouldn't compile on a 32 bit system.
	myInt64 := int64(math.MaxInt64)
	if uint64(myInt) != uint64(myInt64) {
		panic("Must be on 64 bit system.")
	}
}

func CreateFile(path string) (file *os.File) {
	file, err := os.Create(path)
	if err != nil {
		log.Panic().Err(err).Msg("Failed to create file: " + path)
	}
	return file
}

// "data/road-usa.adj" -> "road-usa"
func ExtractGraphName(graphFilename string) (graphName string) {
	gNameMainT := strings.Split(graphFilename, "/")
	gNameMain := gNameMainT[len(gNameMainT)-1]
	gNameMainTD := strings.Split(gNameMain, ".")
	if len(gNameMainTD) > 1 {
		return strings.Join(gNameMainTD[:len(gNameMainTD)-1], ".")
	}
	return gNameMainTD[0]
}

// Line scanner over a fixed buffer; returned lines point into Buf and are only valid until the next Scan.
type FastFileLines struct {
	Buf   []byte
	Start int // First non-processed byte in buf.
	End   int // End of data in buf.
	eof   bool
}

// Scan returns the next line (without the newline), or nil at the end of input.
func (s *FastFileLines) Scan(r io.Reader) []byte {
	for { // Until we have a token.
		if s.End > s.Start { // See if we can get a token with what we already have.
			if i := bytes.IndexByte(s.Buf[s.Start:s.End], '\n'); i >= 0 {
				token := s.Buf[s.Start : s.Start+i]
				s.Start += i + 1
				return token
			}
		}
		if s.eof {
			// Return whatever is left.
			if s.End > s.Start {
				i := s.Start
				s.Start = s.End
				return s.Buf[i:s.End]
			}
			return nil
		}

		// Must read more data. Shift data to beginning of buffer if there's lots of empty space.
		if s.Start > 0 && (s.Start > len(s.Buf)/2 || s.End == len(s.Buf)) {
			copy(s.Buf, s.Buf[s.Start:s.End])
			s.End -= s.Start
			s.Start = 0
		}
		// Buffer is full: give up.
		if s.End == len(s.Buf) {
			panic("token too long")
		}
		for loop := 0; ; loop++ {
			n, err := r.Read(s.Buf[s.End:])
			s.End += n
			if err != nil {
				s.eof = true
				break
			}
			if n > 0 {
				break
			}
			if loop > 100 {
				panic("no progress")
			}
		}
	}
}
