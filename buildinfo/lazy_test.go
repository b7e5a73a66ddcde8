package buildinfo

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestLazyStringComputesOnce(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	accessor := LazyString(func() RawInfo {
		calls.Add(1)
		return sampleRaw()
	})

	const readers = 64
	results := make([]string, readers)
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			results[i] = accessor()
		}(i)
	}
	close(start)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Fatalf("source calls: want 1 got %d", got)
	}
	for i, r := range results {
		if r != results[0] {
			t.Fatalf("reader %d saw %q, want %q", i, r, results[0])
		}
	}
	if accessor() != results[0] {
		t.Fatal("later access returned different text")
	}
}

func TestLazyStringPanicsOnEveryCallWithoutRecomputing(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	accessor := LazyString(func() RawInfo {
		calls.Add(1)
		raw := sampleRaw()
		raw.PackageVersion = "abc"
		return raw
	})

	for i := 0; i < 2; i++ {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("call %d: expected panic", i)
				}
			}()
			accessor()
		}()
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("source calls: want 1 got %d", got)
	}
}

func TestLazyInfoReturnsError(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	accessor := LazyInfo(func() RawInfo {
		calls.Add(1)
		raw := sampleRaw()
		raw.CompilerVersion = "1.2"
		return raw
	})

	if _, err := accessor(); err == nil {
		t.Fatal("expected error")
	}
	if _, err := accessor(); err == nil {
		t.Fatal("expected cached error")
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("source calls: want 1 got %d", got)
	}
}
