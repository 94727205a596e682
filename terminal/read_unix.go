//go:build unix

package terminal

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

// ReadStatus classifies the outcome of a bounded read.
type ReadStatus uint8

const (
	ReadOk ReadStatus = iota
	ReadTimeout
	ReadErr
)

// PollRead waits up to timeout for input on fd and reads whatever is
// available. EINTR during the wait is retried without extending the
// deadline. A zero timeout polls without blocking.
func PollRead(fd int, buf []byte, timeout time.Duration) (int, ReadStatus, error) {
	deadline := time.Now().Add(timeout)
	for {
		remain := time.Until(deadline)
		if remain < 0 {
			remain = 0
		}
		fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		n, err := unix.Poll(fds, int(remain.Milliseconds()))
		if err == unix.EINTR {
			if time.Now().After(deadline) {
				return 0, ReadTimeout, nil
			}
			continue
		}
		if err != nil {
			return 0, ReadErr, fmt.Errorf("poll: %w", err)
		}
		if n == 0 {
			return 0, ReadTimeout, nil
		}

		rn, err := unix.Read(fd, buf)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, ReadErr, fmt.Errorf("read: %w", err)
		}
		return rn, ReadOk, nil
	}
}

// ReadUntil accumulates bytes from fd until one of the delimiter bytes
// arrives or the window closes. The returned data includes everything
// read, delimiter included.
func ReadUntil(fd int, delims string, timeout time.Duration) ([]byte, ReadStatus, error) {
	deadline := time.Now().Add(timeout)
	var data []byte
	buf := make([]byte, 64)
	for {
		remain := time.Until(deadline)
		if remain <= 0 {
			return data, ReadTimeout, nil
		}
		n, status, err := PollRead(fd, buf, remain)
		if status != ReadOk {
			return data, status, err
		}
		for i := 0; i < n; i++ {
			data = append(data, buf[i])
			for j := 0; j < len(delims); j++ {
				if buf[i] == delims[j] {
					return data, ReadOk, nil
				}
			}
		}
	}
}

// Drain reads all currently pending input from fd without blocking.
func Drain(fd int) ([]byte, error) {
	var data []byte
	buf := make([]byte, 256)
	for {
		n, status, err := PollRead(fd, buf, 0)
		if status == ReadErr {
			return data, err
		}
		if status == ReadTimeout || n == 0 {
			return data, nil
		}
		data = append(data, buf[:n]...)
	}
}
