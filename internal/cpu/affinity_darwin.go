//go:build darwin

package cpu

import "runtime"

// Pin locks the calling goroutine to an OS thread. macOS exposes no public
// thread-to-core affinity API, so pinning stops at thread locking there.
func Pin(workerID int) func() {
	runtime.LockOSThread()

	return func() {
		runtime.UnlockOSThread()
	}
}
