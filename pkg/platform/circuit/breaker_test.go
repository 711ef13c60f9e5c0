package circuit

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type step struct {
	fail      bool
	wantOpen  bool
	wantEvent string // "opened", "closed" or ""
}

func run(t *testing.T, b *Breaker, steps []step) {
	t.Helper()
	for i, st := range steps {
		var change Change
		if st.fail {
			_, change = b.RecordFailure()
		} else {
			_, change = b.RecordSuccess()
		}
		event := ""
		switch {
		case change.Opened:
			event = "opened"
		case change.Closed:
			event = "closed"
		}
		require.Equal(t, st.wantEvent, event, "step %d event", i)
		require.Equal(t, st.wantOpen, b.IsOpen(), "step %d state", i)
	}
}

func TestBreaker_Sequences(t *testing.T) {
	tests := []struct {
		name  string
		opts  []Option
		steps []step
	}{
		{
			name: "opens on the third consecutive failure",
			opts: []Option{WithFailureThreshold(3)},
			steps: []step{
				{fail: true},
				{fail: true},
				{fail: true, wantOpen: true, wantEvent: "opened"},
				{fail: true, wantOpen: true},
			},
		},
		{
			name: "a success in between restarts the failure count",
			opts: []Option{WithFailureThreshold(3)},
			steps: []step{
				{fail: true},
				{fail: true},
				{},
				{fail: true},
				{fail: true},
				{fail: true, wantOpen: true, wantEvent: "opened"},
			},
		},
		{
			name: "closes after consecutive successful retries",
			opts: []Option{WithFailureThreshold(1), WithSuccessThreshold(2)},
			steps: []step{
				{fail: true, wantOpen: true, wantEvent: "opened"},
				{wantOpen: true},
				{wantEvent: "closed"},
			},
		},
		{
			name: "a failed retry restarts the success count",
			opts: []Option{WithFailureThreshold(1), WithSuccessThreshold(2)},
			steps: []step{
				{fail: true, wantOpen: true, wantEvent: "opened"},
				{wantOpen: true},
				{fail: true, wantOpen: true},
				{wantOpen: true},
				{wantEvent: "closed"},
			},
		},
		{
			name: "non-positive thresholds keep the defaults",
			opts: []Option{WithFailureThreshold(0), WithSuccessThreshold(-1)},
			steps: []step{
				{fail: true}, {fail: true}, {fail: true}, {fail: true},
				{fail: true, wantOpen: true, wantEvent: "opened"},
				{wantOpen: true},
				{wantEvent: "closed"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run(t, New("iucn", tt.opts...), tt.steps)
		})
	}
}

func TestBreaker_ResetAndState(t *testing.T) {
	b := New("iucn", WithFailureThreshold(1))
	assert.Equal(t, "iucn", b.Name())
	assert.Equal(t, "closed", b.State().String())

	b.RecordFailure()
	assert.Equal(t, "open", b.State().String())

	b.Reset()
	assert.Equal(t, StateClosed, b.State())
	useFallback, _ := b.RecordFailure()
	assert.True(t, useFallback, "counters are cleared, so one failure reopens")
}

func TestBreaker_ConcurrentRecording(t *testing.T) {
	b := New("iucn", WithFailureThreshold(50))

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 5 {
				b.RecordFailure()
			}
		}()
	}
	wg.Wait()

	assert.True(t, b.IsOpen())
}
