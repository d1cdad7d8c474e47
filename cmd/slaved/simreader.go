package main

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/golang/glog"
)

type simRead struct {
	code uint32
	bits uint8
}

// simReader supplies card reads parsed from a text stream, one per
// line as "CODE" or "CODE:BITS" (BITS defaults to 26). It stands in
// for the hardware decode capability during bench testing.
type simReader struct {
	rc io.ReadCloser

	lock  sync.Mutex
	queue []simRead
}

func newSimReader(rc io.ReadCloser) *simReader {
	return &simReader{rc: rc}
}

// Poll implements wiegand.Source.
func (s *simReader) Poll() (uint32, uint8, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if len(s.queue) == 0 {
		return 0, 0, false
	}
	read := s.queue[0]
	s.queue = s.queue[1:]
	return read.code, read.bits, true
}

// Run implements slave.Runnable.
func (s *simReader) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			s.rc.Close()
		case <-done:
		}
	}()

	scanner := bufio.NewScanner(s.rc)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		read, err := parseSimRead(line)
		if err != nil {
			glog.Warningf("sim read %q ignored: %v", line, err)
			continue
		}
		s.lock.Lock()
		s.queue = append(s.queue, read)
		s.lock.Unlock()
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return scanner.Err()
}

func parseSimRead(line string) (simRead, error) {
	codeStr, bitsStr, hasBits := strings.Cut(line, ":")
	code, err := strconv.ParseUint(codeStr, 10, 32)
	if err != nil {
		return simRead{}, err
	}
	read := simRead{code: uint32(code), bits: 26}
	if hasBits {
		bits, err := strconv.ParseUint(bitsStr, 10, 8)
		if err != nil {
			return simRead{}, err
		}
		read.bits = uint8(bits)
	}
	return read, nil
}
