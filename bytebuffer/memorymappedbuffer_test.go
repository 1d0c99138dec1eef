package bytebuffer

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func TestMemoryMappedBuffer(t *testing.T) {
	filename := "bytebuffer_memorymappedbuffer_test.tmp"
	loc := filepath.Join(os.TempDir(), filename)

	if _, err := os.Stat(loc); err == nil {
		err = os.Remove(loc)
		if err != nil {
			t.Fatal("Cannot proceed with test as cannot remove existing file")
		}
	}

	b, err := NewMemoryMappedBuffer(loc, 10)
	if err != nil {
		t.Fatal("Cannot proceed with test as create buffer failed:", err)
	}

	if _, err = os.Stat(loc); err != nil {
		t.Fatalf("No File created at %v despite the Buffer being initialized", loc)
	}

	if err = b.PutUint8(5, 'x'); err != nil {
		t.Fatal("Cannot Write to MemoryMappedBuffer")
	}

	if err = b.Flush(); err != nil {
		t.Fatal(err)
	}

	data, err := ioutil.ReadFile(loc)
	if err != nil {
		t.Fatal("Cannot read data from memory mapped file")
	}

	if data[5] != 'x' {
		t.Error("Data Written in buffer not getting reflected in file")
	}

	testUnmap(b, loc, t)
}

func TestMemoryMappedBufferResize(t *testing.T) {
	loc := filepath.Join(os.TempDir(), "bytebuffer_memorymappedbuffer_resize_test.tmp")

	b, err := NewMemoryMappedBuffer(loc, 4)
	if err != nil {
		t.Fatal("Cannot proceed with test as create buffer failed:", err)
	}

	if _, err = b.WriteAt([]byte("abcd"), 0); err != nil {
		t.Fatal(err)
	}

	if err = b.Resize(12); err != nil {
		t.Fatal(err)
	}

	if b.Len() != 12 {
		t.Errorf("expected length 12, got %v", b.Len())
	}

	if _, err = b.WriteAt([]byte("efgh"), 4); err != nil {
		t.Fatal(err)
	}

	if err = b.Flush(); err != nil {
		t.Fatal(err)
	}

	data, err := ioutil.ReadFile(loc)
	if err != nil {
		t.Fatal(err)
	}

	if len(data) != 12 {
		t.Errorf("expected file size 12, got %v", len(data))
	}

	if string(data[:8]) != "abcdefgh" {
		t.Errorf("expected abcdefgh, got %q", data[:8])
	}

	testUnmap(b, loc, t)
}

func testUnmap(b *MemoryMappedBuffer, loc string, t *testing.T) {
	if err := b.Unmap(true); err != nil {
		t.Error(err)
	}

	if _, err := os.Stat(loc); err == nil {
		t.Error("Memory Mapped File not getting deleted on Unmap")
	}
}
