package main

import (
	"context"
	"io"
	"sync"
)

// serialPump moves bytes from the serial port into a buffer the
// device drains on its own schedule, keeping the scheduler free of
// blocking reads.
type serialPump struct {
	rc io.ReadCloser

	lock sync.Mutex
	buf  []byte
}

func newSerialPump(rc io.ReadCloser) *serialPump {
	return &serialPump{rc: rc}
}

// Drain implements slave.ByteSource.
func (p *serialPump) Drain() []byte {
	p.lock.Lock()
	defer p.lock.Unlock()
	b := p.buf
	p.buf = nil
	return b
}

// Run implements slave.Runnable. Cancellation closes the underlying
// port to unblock the pending read.
func (p *serialPump) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			p.rc.Close()
		case <-done:
		}
	}()

	buf := make([]byte, 256)
	for {
		n, err := p.rc.Read(buf)
		if n > 0 {
			p.lock.Lock()
			p.buf = append(p.buf, buf[:n]...)
			p.lock.Unlock()
		}
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}
	}
}
