package param

import (
	"sync"
	"testing"
)

func TestFlag_ConsumeClears(t *testing.T) {
	var f Flag

	if f.Peek() {
		t.Fatal("zero-value flag should be clean")
	}

	f.Mark()

	if !f.Peek() {
		t.Fatal("flag not set after Mark")
	}

	if !f.Consume() {
		t.Fatal("first Consume should report set")
	}

	if f.Consume() {
		t.Fatal("second Consume should report clean")
	}

	if f.Peek() {
		t.Fatal("flag still set after Consume")
	}
}

func TestFlag_PeekDoesNotClear(t *testing.T) {
	var f Flag
	f.Mark()

	for i := 0; i < 3; i++ {
		if !f.Peek() {
			t.Fatalf("Peek %d cleared the flag", i)
		}
	}

	if !f.Consume() {
		t.Fatal("flag lost after repeated Peek")
	}
}

func TestFloat_StoreLoad(t *testing.T) {
	var p Float

	if p.Load() != 0 {
		t.Fatalf("zero value: got %v, want 0", p.Load())
	}

	p.Store(-18.5)

	if p.Load() != -18.5 {
		t.Fatalf("got %v, want -18.5", p.Load())
	}
}

func TestFloat_StoreIfChanged(t *testing.T) {
	var p Float
	p.Store(1.0)

	if p.StoreIfChanged(1.0+5e-7, 1e-6) {
		t.Fatal("sub-epsilon write reported as changed")
	}

	if p.Load() != 1.0 {
		t.Fatalf("sub-epsilon write mutated slot: %v", p.Load())
	}

	if !p.StoreIfChanged(1.5, 1e-6) {
		t.Fatal("significant write not reported as changed")
	}

	if p.Load() != 1.5 {
		t.Fatalf("got %v, want 1.5", p.Load())
	}
}

func TestInt_StoreLoad(t *testing.T) {
	var p Int
	p.Store(6)

	if p.Load() != 6 {
		t.Fatalf("got %d, want 6", p.Load())
	}
}

// TestWriterReaderVisibility drives a control goroutine writing a slot
// and marking the flag while the "audio" side consumes. Every consumed
// dirty period must observe a value at least as new as the one written
// before the corresponding Mark.
func TestWriterReaderVisibility(t *testing.T) {
	var (
		slot Float
		f    Flag
		wg   sync.WaitGroup
	)

	const writes = 10000

	wg.Add(1)

	go func() {
		defer wg.Done()

		for i := 1; i <= writes; i++ {
			slot.Store(float64(i))
			f.Mark()
		}
	}()

	last := 0.0

	for last < writes {
		if f.Consume() {
			v := slot.Load()
			if v < last {
				t.Errorf("observed stale value %v after %v", v, last)
				break
			}

			last = v
		}
	}

	wg.Wait()

	if slot.Load() != writes {
		t.Fatalf("final value %v, want %d", slot.Load(), writes)
	}
}
