package page

import "testing"

func TestFrameZeroValue(t *testing.T) {
	var f Frame
	if f.PageID() != 0 {
		t.Fatalf("zero value PageID: got %d, want 0", f.PageID())
	}
	if f.IsDirty() {
		t.Fatalf("zero value frame should not be dirty")
	}
	if f.PinCount() != 0 {
		t.Fatalf("zero value PinCount: got %d, want 0", f.PinCount())
	}
}

func TestFrameClearZeroesData(t *testing.T) {
	var f Frame
	copy(f.Data[:], "not zero")
	f.Clear()
	for i, b := range f.Data {
		if b != 0 {
			t.Fatalf("byte %d not cleared: got %d", i, b)
		}
	}
}

func TestFrameSettersRoundTrip(t *testing.T) {
	var f Frame
	f.SetPageID(42)
	f.SetPinCount(3)
	f.SetDirty(true)

	if f.PageID() != 42 {
		t.Fatalf("PageID: got %d, want 42", f.PageID())
	}
	if f.PinCount() != 3 {
		t.Fatalf("PinCount: got %d, want 3", f.PinCount())
	}
	if !f.IsDirty() {
		t.Fatalf("IsDirty: got false, want true")
	}
}
