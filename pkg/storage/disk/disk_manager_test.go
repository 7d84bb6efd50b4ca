package disk

import (
	"os"
	"testing"

	"bufpool/pkg/storage/page"
)

func TestFileManagerWriteThenRead(t *testing.T) {
	dbFile := "test_diskmanager.db"
	os.Remove(dbFile)
	defer os.Remove(dbFile)

	dm, err := NewFileManager(dbFile)
	if err != nil {
		t.Fatal(err)
	}
	defer dm.Close()

	var buf [page.PageSize]byte
	copy(buf[:], "Hello Database World!")

	if err := dm.WritePage(3, buf[:]); err != nil {
		t.Fatal(err)
	}

	var readBack [page.PageSize]byte
	if err := dm.ReadPage(3, readBack[:]); err != nil {
		t.Fatal(err)
	}

	if got := string(readBack[:21]); got != "Hello Database World!" {
		t.Fatalf("data mismatch: got %q", got)
	}
}

func TestFileManagerReadUnwrittenPageIsZeroed(t *testing.T) {
	dbFile := "test_diskmanager_sparse.db"
	os.Remove(dbFile)
	defer os.Remove(dbFile)

	dm, err := NewFileManager(dbFile)
	if err != nil {
		t.Fatal(err)
	}
	defer dm.Close()

	var buf [page.PageSize]byte
	if err := dm.ReadPage(7, buf[:]); err != nil {
		t.Fatal(err)
	}
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d of unwritten page: got %d, want 0", i, b)
		}
	}
}

func TestFileManagerRejectsWrongSizedBuffer(t *testing.T) {
	dbFile := "test_diskmanager_badsize.db"
	os.Remove(dbFile)
	defer os.Remove(dbFile)

	dm, err := NewFileManager(dbFile)
	if err != nil {
		t.Fatal(err)
	}
	defer dm.Close()

	if err := dm.WritePage(0, make([]byte, 10)); err == nil {
		t.Fatalf("expected error writing undersized buffer")
	}
	if err := dm.ReadPage(0, make([]byte, 10)); err == nil {
		t.Fatalf("expected error reading into undersized buffer")
	}
}

func TestMemManagerWriteThenRead(t *testing.T) {
	dm := NewMemManager()

	var buf [page.PageSize]byte
	copy(buf[:], "in-memory page data")
	if err := dm.WritePage(5, buf[:]); err != nil {
		t.Fatal(err)
	}

	var readBack [page.PageSize]byte
	if err := dm.ReadPage(5, readBack[:]); err != nil {
		t.Fatal(err)
	}
	if got := string(readBack[:19]); got != "in-memory page data" {
		t.Fatalf("data mismatch: got %q", got)
	}

	// writes must be copied, not aliased
	buf[0] = 'X'
	if err := dm.ReadPage(5, readBack[:]); err != nil {
		t.Fatal(err)
	}
	if readBack[0] == 'X' {
		t.Fatalf("MemManager aliased the caller's buffer")
	}
}

func TestMemManagerReadUnwrittenPageIsZeroed(t *testing.T) {
	dm := NewMemManager()
	var buf [page.PageSize]byte
	buf[0] = 0xFF
	if err := dm.ReadPage(99, buf[:]); err != nil {
		t.Fatal(err)
	}
	if buf[0] != 0 {
		t.Fatalf("expected zero-filled read, got byte 0 = %d", buf[0])
	}
}
