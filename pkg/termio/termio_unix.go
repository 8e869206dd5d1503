//go:build !windows

package termio

import (
	"os"
	"syscall"
	"time"
)

// tcflsh is the TCFLSH ioctl request; tciflush selects pending input.
const (
	tcflsh   = 0x540B
	tciflush = 0
)

func flushInput(f *os.File) {
	syscall.Syscall(syscall.SYS_IOCTL, f.Fd(), uintptr(tcflsh), uintptr(tciflush)) //nolint:errcheck
}

func drainInput(f *os.File) {
	fd := int(f.Fd())

	if err := syscall.SetNonblock(fd, true); err != nil {
		return
	}
	defer syscall.SetNonblock(fd, false) //nolint:errcheck

	buf := make([]byte, 256)
	for attempt := 0; attempt < 10; attempt++ {
		n, err := syscall.Read(fd, buf)
		if err != nil || n <= 0 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
}
