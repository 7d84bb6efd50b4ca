package logmgr

import "testing"

func TestNoopAlwaysSucceeds(t *testing.T) {
	var lm Noop
	if err := lm.FlushTo(0); err != nil {
		t.Fatalf("Noop.FlushTo: %v", err)
	}
	if err := lm.FlushTo(12345); err != nil {
		t.Fatalf("Noop.FlushTo: %v", err)
	}
}

func TestRecorderRecordsCalls(t *testing.T) {
	r := &Recorder{}
	_ = r.FlushTo(1)
	_ = r.FlushTo(2)

	if len(r.Calls) != 2 || r.Calls[0] != 1 || r.Calls[1] != 2 {
		t.Fatalf("unexpected calls recorded: %v", r.Calls)
	}
}
