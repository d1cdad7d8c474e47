package slave

// lineBuffer accumulates serial bytes into lines. The buffer is
// cleared on every newline regardless of content, and bytes arriving
// while the buffer is full are dropped rather than appended.
type lineBuffer struct {
	buf []byte
	max int
}

func newLineBuffer(max int) *lineBuffer {
	return &lineBuffer{buf: make([]byte, 0, max), max: max}
}

// Feed consumes data byte by byte and invokes emit for each complete
// non-empty line (without the newline).
func (b *lineBuffer) Feed(data []byte, emit func(line string)) {
	for _, c := range data {
		if c == '\n' {
			line := string(b.buf)
			b.buf = b.buf[:0]
			if line != "" {
				emit(line)
			}
			continue
		}
		if len(b.buf) < b.max {
			b.buf = append(b.buf, c)
		}
	}
}
