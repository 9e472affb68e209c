package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/lixenwraith/galaga/terminal"
)

var (
	crashMu    sync.Mutex
	crashHooks []func()
	crashing   bool
)

// OnCrash registers fn to run after the terminal is restored and before the process exits
// Used to persist the highscore and release the speaker when a frame panics
func OnCrash(fn func()) {
	crashMu.Lock()
	crashHooks = append(crashHooks, fn)
	crashMu.Unlock()
}

// HandleCrash restores the terminal, runs crash hooks, prints the panic and exits 1
func HandleCrash(r any) {
	if r == nil {
		return
	}

	terminal.EmergencyReset(os.Stdout)
	os.Stdout.Sync()

	runCrashHooks(os.Stderr)
	reportCrash(os.Stderr, r, debug.Stack())

	os.Stderr.Sync()
	os.Exit(1)
}

// Go runs fn in a new goroutine with panic recovery
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}

// runCrashHooks runs every registered hook once, newest first
// A panicking hook is reported to w and the remaining hooks still run
// Concurrent crashes run the hooks only once
func runCrashHooks(w io.Writer) {
	crashMu.Lock()
	if crashing {
		crashMu.Unlock()
		return
	}
	crashing = true
	hooks := crashHooks
	crashMu.Unlock()

	for i := len(hooks) - 1; i >= 0; i-- {
		func() {
			defer func() {
				if r := recover(); r != nil {
					fmt.Fprintf(w, "\r\ncrash hook failed: %v\r\n", r)
				}
			}()
			hooks[i]()
		}()
	}
}

// reportCrash writes the panic value and stack using \r\n for raw-mode terminals
func reportCrash(w io.Writer, r any, stack []byte) {
	fmt.Fprintf(w, "\r\n\x1b[31mGALAGA CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(w, "Stack Trace:\r\n%s\r\n", stack)
}
