package lsmcore

import "testing"

func TestEntryIsTombstone(t *testing.T) {
	live := &Entry{Key: []byte("k"), Val: []byte("v")}
	dead := &Entry{Key: []byte("k"), Val: nil}
	if live.IsTombstone() {
		t.Fatal("entry with a value must not be a tombstone")
	}
	if !dead.IsTombstone() {
		t.Fatal("entry with an empty value must be a tombstone")
	}
}

func TestEntrySizeBytes(t *testing.T) {
	e := &Entry{Key: []byte("key"), Val: []byte("value"), TrxID: 1}
	if got, want := e.SizeBytes(), len("key")+len("value")+8; got != want {
		t.Fatalf("SizeBytes() = %d, want %d", got, want)
	}
}
