package core

// streaming.go provides the io.Reader wrappers the line source reads
// through.
//
// Header column names are matched verbatim against the vocabulary, so a
// UTF-8 BOM (0xEF 0xBB 0xBF, common in Windows exports) glued to the first
// column name would make every column in the file unrecognizable. The BOM
// is stripped at the byte layer, before any line splitting. Byte counting
// feeds the run counters.

import "io"

// bomSkippingReader drops a leading UTF-8 BOM, if present, and is
// transparent otherwise.
type bomSkippingReader struct {
	r       io.Reader
	checked bool
	rest    []byte // probe bytes still owed to the caller when no BOM was found
}

func newBOMSkippingReader(r io.Reader) *bomSkippingReader {
	return &bomSkippingReader{r: r}
}

func (b *bomSkippingReader) Read(p []byte) (int, error) {
	if !b.checked {
		b.checked = true

		var probe [3]byte
		n, err := io.ReadFull(b.r, probe[:])
		if !(n == 3 && probe[0] == 0xEF && probe[1] == 0xBB && probe[2] == 0xBF) {
			b.rest = probe[:n]
		}
		if err == io.ErrUnexpectedEOF {
			err = io.EOF
		}
		if err != nil && err != io.EOF {
			return 0, err
		}
		if len(b.rest) == 0 && err == io.EOF {
			return 0, io.EOF
		}
	}

	if len(b.rest) > 0 {
		n := copy(p, b.rest)
		b.rest = b.rest[n:]
		return n, nil
	}
	return b.r.Read(p)
}

// countingReader tracks how many bytes passed through it.
type countingReader struct {
	r         io.Reader
	bytesRead int64
}

func newCountingReader(r io.Reader) *countingReader {
	return &countingReader{r: r}
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.bytesRead += int64(n)
	return n, err
}
