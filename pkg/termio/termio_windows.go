//go:build windows

package termio

import (
	"os"
	"syscall"
)

var procFlushConsoleInputBuffer = syscall.NewLazyDLL("kernel32.dll").NewProc("FlushConsoleInputBuffer")

func flushInput(f *os.File) {
	// fails silently on non-console handles
	procFlushConsoleInputBuffer.Call(f.Fd()) //nolint:errcheck
}

// drainInput is a no-op; FlushConsoleInputBuffer already discards all
// pending console events.
func drainInput(*os.File) {}
