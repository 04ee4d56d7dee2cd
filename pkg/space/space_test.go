package space

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tuplespaced/linda/internal/config"
)

func newTestSpace(t *testing.T) *Space {
	t.Helper()
	cfg := config.Config{
		Dir:               t.TempDir(),
		LockTimeout:       time.Second,
		PollInterval:      10 * time.Millisecond,
		LockRetryInterval: 5 * time.Millisecond,
	}
	s, err := Open(cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	s.pollInterval = 10 * time.Millisecond
	return s
}

// S1: out("job","hello"); inp("job",once) -> "hello"
func TestRoundTrip(t *testing.T) {
	s := newTestSpace(t)
	ctx := context.Background()

	if err := s.Out(ctx, "job", []byte("hello")); err != nil {
		t.Fatalf("Out: %v", err)
	}
	got, err := s.Inp(ctx, "job", ModeOnce())
	if err != nil {
		t.Fatalf("Inp: %v", err)
	}
	if string(got) != "hello" {
		t.Fatalf("got %q, want hello", got)
	}

	if _, err := s.Inp(ctx, "job", ModeOnce()); err != ErrNoMatch {
		t.Fatalf("second Inp: got %v, want ErrNoMatch", err)
	}
}

func TestRdIdempotence(t *testing.T) {
	s := newTestSpace(t)
	ctx := context.Background()

	if err := s.Out(ctx, "job", []byte("hello")); err != nil {
		t.Fatalf("Out: %v", err)
	}
	a, err := s.Rd(ctx, "job", ModeOnce())
	if err != nil {
		t.Fatalf("Rd 1: %v", err)
	}
	b, err := s.Rd(ctx, "job", ModeOnce())
	if err != nil {
		t.Fatalf("Rd 2: %v", err)
	}
	if string(a) != string(b) {
		t.Fatalf("Rd calls disagreed: %q vs %q", a, b)
	}
}

// S2, scaled down: out("x","v",ttl=50ms); sleep(150ms); rd/inp("x",once) -> no-match
func TestExpiry(t *testing.T) {
	s := newTestSpace(t)
	ctx := context.Background()

	if err := s.Out(ctx, "x", []byte("v"), WithTTL(50*time.Millisecond)); err != nil {
		t.Fatalf("Out: %v", err)
	}
	time.Sleep(150 * time.Millisecond)

	if _, err := s.Rd(ctx, "x", ModeOnce()); err != ErrNoMatch {
		t.Fatalf("Rd after expiry: got %v, want ErrNoMatch", err)
	}
	if _, err := s.Inp(ctx, "x", ModeOnce()); err != ErrNoMatch {
		t.Fatalf("Inp after expiry: got %v, want ErrNoMatch", err)
	}
	counts, err := s.Ls("x")
	if err != nil {
		t.Fatalf("Ls: %v", err)
	}
	if len(counts) != 0 {
		t.Fatalf("Ls after expiry: got %v, want empty", counts)
	}
}

// S3: out("q","a",seq); out("q","b",seq); out("q","c",seq); [inp x3] -> a,b,c
func TestFIFOUnderSeq(t *testing.T) {
	s := newTestSpace(t)
	ctx := context.Background()

	for _, v := range []string{"a", "b", "c"} {
		if err := s.Out(ctx, "q", []byte(v), WithSeq()); err != nil {
			t.Fatalf("Out(%q): %v", v, err)
		}
	}

	for _, want := range []string{"a", "b", "c"} {
		got, err := s.Inp(ctx, "q", ModeOnce())
		if err != nil {
			t.Fatalf("Inp: %v", err)
		}
		if string(got) != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	}
}

// S4: out("r","first",rep); out("r","second",rep); rd("r",once) -> "second"
func TestReplacement(t *testing.T) {
	s := newTestSpace(t)
	ctx := context.Background()

	if err := s.Out(ctx, "r", []byte("first"), WithRep()); err != nil {
		t.Fatalf("Out first: %v", err)
	}
	if err := s.Out(ctx, "r", []byte("second"), WithRep()); err != nil {
		t.Fatalf("Out second: %v", err)
	}
	got, err := s.Rd(ctx, "r", ModeOnce())
	if err != nil {
		t.Fatalf("Rd: %v", err)
	}
	if string(got) != "second" {
		t.Fatalf("got %q, want second", got)
	}
}

// At-most-one-delivery: concurrent Inp callers against a single tuple
// leave it unlinked, and at least one of them receives it.
func TestAtMostOneDelivery(t *testing.T) {
	s := newTestSpace(t)
	ctx := context.Background()

	if err := s.Out(ctx, "n", []byte("v")); err != nil {
		t.Fatalf("Out: %v", err)
	}

	const p = 8
	results := make(chan error, p)
	for i := 0; i < p; i++ {
		go func() {
			_, err := s.Inp(ctx, "n", ModeOnce())
			results <- err
		}()
	}

	successes := 0
	for i := 0; i < p; i++ {
		if <-results == nil {
			successes++
		}
	}

	counts, err := s.Ls("n")
	if err != nil {
		t.Fatalf("Ls: %v", err)
	}
	if len(counts) != 0 {
		t.Fatalf("tuple survived concurrent Inp: %v", counts)
	}
	if successes < 1 {
		t.Fatalf("no Inp call observed the tuple")
	}
}

// S6, scaled down: inp("never", timeout 300ms) on an empty space fails with
// timeout after at least 300ms and before 1.3s.
func TestTimeoutAccuracy(t *testing.T) {
	s := newTestSpace(t)
	ctx := context.Background()

	start := time.Now()
	_, err := s.Inp(ctx, "never", ModeTimeout(300*time.Millisecond))
	elapsed := time.Since(start)

	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("got %v, want ErrTimeout", err)
	}
	if elapsed < 300*time.Millisecond {
		t.Fatalf("returned too early: %v", elapsed)
	}
	if elapsed > 1300*time.Millisecond {
		t.Fatalf("returned too late: %v", elapsed)
	}
}

// S5: out("k","v1"); out("k","v2"); out("m","w"); ls() contains "2 k" and "1 m".
func TestLsCounting(t *testing.T) {
	s := newTestSpace(t)
	ctx := context.Background()

	if err := s.Out(ctx, "k", []byte("v1")); err != nil {
		t.Fatalf("Out: %v", err)
	}
	if err := s.Out(ctx, "k", []byte("v2")); err != nil {
		t.Fatalf("Out: %v", err)
	}
	if err := s.Out(ctx, "m", []byte("w")); err != nil {
		t.Fatalf("Out: %v", err)
	}

	counts, err := s.Ls("")
	if err != nil {
		t.Fatalf("Ls: %v", err)
	}
	byName := map[string]int{}
	for _, c := range counts {
		byName[c.Name] = c.N
	}
	if byName["k"] != 2 {
		t.Fatalf("k count = %d, want 2", byName["k"])
	}
	if byName["m"] != 1 {
		t.Fatalf("m count = %d, want 1", byName["m"])
	}
}

func TestLs_ReportsSoonestExpiry(t *testing.T) {
	s := newTestSpace(t)
	ctx := context.Background()

	if err := s.Out(ctx, "j", []byte("no-ttl")); err != nil {
		t.Fatalf("Out: %v", err)
	}
	if err := s.Out(ctx, "j", []byte("ttl"), WithTTL(time.Hour)); err != nil {
		t.Fatalf("Out: %v", err)
	}
	if err := s.Out(ctx, "n", []byte("only-no-ttl")); err != nil {
		t.Fatalf("Out: %v", err)
	}

	counts, err := s.Ls("")
	if err != nil {
		t.Fatalf("Ls: %v", err)
	}
	byName := map[string]Count{}
	for _, c := range counts {
		byName[c.Name] = c
	}

	if byName["j"].Expiry == 0 {
		t.Fatalf("j: got Expiry 0, want the ttl tuple's expiry to surface")
	}
	if byName["n"].Expiry != 0 {
		t.Fatalf("n: got Expiry %d, want 0 (no tuple in the group has a TTL)", byName["n"].Expiry)
	}
}

func TestOut_RejectsInvalidName(t *testing.T) {
	s := newTestSpace(t)
	if err := s.Out(context.Background(), "bad-name", []byte("v")); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("got %v, want ErrInvalidArgument", err)
	}
}

func TestOut_RejectsConflictingOptions(t *testing.T) {
	s := newTestSpace(t)
	err := s.Out(context.Background(), "n", []byte("v"), WithSeq(), WithRep())
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("got %v, want ErrInvalidArgument", err)
	}
}

func TestRd_ModeWaitUnblocksOnPublish(t *testing.T) {
	s := newTestSpace(t)
	ctx := context.Background()

	done := make(chan []byte, 1)
	go func() {
		data, err := s.Rd(ctx, "late", ModeWait())
		if err != nil {
			t.Errorf("Rd: %v", err)
			done <- nil
			return
		}
		done <- data
	}()

	time.Sleep(50 * time.Millisecond)
	if err := s.Out(ctx, "late", []byte("arrived")); err != nil {
		t.Fatalf("Out: %v", err)
	}

	select {
	case got := <-done:
		if string(got) != "arrived" {
			t.Fatalf("got %q, want arrived", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("ModeWait never unblocked")
	}
}

func TestClear(t *testing.T) {
	s := newTestSpace(t)
	ctx := context.Background()

	if err := s.Out(ctx, "a", []byte("1")); err != nil {
		t.Fatalf("Out: %v", err)
	}
	if err := s.Out(ctx, "b", []byte("2"), WithSeq()); err != nil {
		t.Fatalf("Out: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	counts, err := s.Ls("")
	if err != nil {
		t.Fatalf("Ls: %v", err)
	}
	if len(counts) != 0 {
		t.Fatalf("tuples survived Clear: %v", counts)
	}
}

func TestContextCancellation(t *testing.T) {
	s := newTestSpace(t)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := s.Rd(ctx, "missing", ModeWait())
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("got %v, want ErrTimeout", err)
	}
}
