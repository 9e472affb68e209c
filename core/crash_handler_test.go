package core

import (
	"bytes"
	"strings"
	"testing"
)

// resetCrashState clears registered hooks between tests
func resetCrashState(t *testing.T) {
	t.Helper()
	crashMu.Lock()
	crashHooks, crashing = nil, false
	crashMu.Unlock()
	t.Cleanup(func() {
		crashMu.Lock()
		crashHooks, crashing = nil, false
		crashMu.Unlock()
	})
}

func TestCrashHooksRunNewestFirstOnce(t *testing.T) {
	resetCrashState(t)

	var order []string
	OnCrash(func() { order = append(order, "save highscore") })
	OnCrash(func() { order = append(order, "close speaker") })

	var out bytes.Buffer
	runCrashHooks(&out)
	runCrashHooks(&out)

	if got := strings.Join(order, ","); got != "close speaker,save highscore" {
		t.Errorf("Hook order = %q", got)
	}
}

func TestCrashHookPanicDoesNotStopOthers(t *testing.T) {
	resetCrashState(t)

	saved := false
	OnCrash(func() { saved = true })
	OnCrash(func() { panic("speaker gone") })

	var out bytes.Buffer
	runCrashHooks(&out)

	if !saved {
		t.Error("Expected earlier hook to run after a panicking hook")
	}
	if !strings.Contains(out.String(), "speaker gone") {
		t.Errorf("Expected hook failure reported, got %q", out.String())
	}
}

func TestReportCrash(t *testing.T) {
	var out bytes.Buffer
	reportCrash(&out, "nil formation", []byte("goroutine 1 [running]"))

	s := out.String()
	if !strings.Contains(s, "GALAGA CRASHED: nil formation") {
		t.Errorf("Expected panic value in report, got %q", s)
	}
	if !strings.Contains(s, "goroutine 1 [running]") {
		t.Error("Expected stack in report")
	}
	if strings.Contains(strings.ReplaceAll(s, "\r\n", ""), "\n") {
		t.Error("Report lines must end with \\r\\n for raw-mode terminals")
	}
}

func TestHandleCrashNilIsNoop(t *testing.T) {
	HandleCrash(nil)
}
