// Package affinity pins worker goroutines to specific CPUs. Go's scheduler
// multiplexes goroutines over OS threads, so this is only a hint: the caller
// locks its goroutine to its current OS thread and Pin asks the kernel to
// restrict that thread to one CPU.
package affinity

// Pin restricts the calling goroutine's OS thread to cpuID, best-effort. The
// caller must have already called runtime.LockOSThread, and should keep
// running on the same goroutine for the pin to mean anything. Errors are
// non-fatal: a platform without an affinity syscall just runs unpinned.
func Pin(cpuID int) error {
	return pin(cpuID)
}
