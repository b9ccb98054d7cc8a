//go:build windows

package cpu

import (
	"runtime"
	"syscall"
)

var (
	kernel32              = syscall.NewLazyDLL("kernel32.dll")
	setThreadAffinityMask = kernel32.NewProc("SetThreadAffinityMask")
	getCurrentThread      = kernel32.NewProc("GetCurrentThread")
)

// Pin locks the calling goroutine to an OS thread and binds that thread to
// one CPU core via SetThreadAffinityMask. Worker IDs beyond the core count
// wrap around. The returned cleanup function releases the thread and should
// be deferred.
func Pin(workerID int) func() {
	runtime.LockOSThread()

	core := workerID % runtime.NumCPU()
	handle, _, _ := getCurrentThread.Call()
	// Bit N of the mask selects CPU N.
	_, _, _ = setThreadAffinityMask.Call(handle, uintptr(1)<<uint(core))

	return func() {
		runtime.UnlockOSThread()
	}
}
