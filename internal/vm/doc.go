// Package vm implements the execution engine of the virtual machine.
//
// The engine is assembled from injected components: memory, register bank,
// program counter, keyboard and frame buffer. A single caller drives it by
// invoking RunCycles repeatedly, typically once per host frame. There is no
// internal concurrency, a VM instance must not be shared between goroutines.
//
// # Engine states
//
//   - Initializing: created or reset, a program can be loaded
//   - LoadingROM: a program is being copied into memory
//   - Executing: the last decoded instruction is carried in the state
//   - Paused: no instructions are decoded, timers keep ticking
//   - WaitingForKey: an "LD Vx, K" instruction polls the keyboard every cycle
//
// # Cycles
//
// Every invoked cycle decrements both timers, regardless of the engine state.
// A cycle in the Paused or WaitingForKey state performs no decode work but
// still counts against the cycle budget of the caller.
//
// # Errors
//
// Call stack underflow and overflow as well as memory accesses past the end of
// memory are fatal: RunCycles returns the error and keeps returning it until
// Reset is called. Invalid instructions are logged and skipped unless
// Options.StopOnInvalid is set.
package vm
