package session

import (
	"errors"
	"io"
	"testing"
	"time"
)

func TestPCMQueueTakeReturnsBufferedSamples(t *testing.T) {
	q := newPCMQueue()
	q.push([]int16{1, 2, 3, 4, 5, 6})

	got, err := q.take(4)
	if err != nil {
		t.Fatalf("take(4) error: %v", err)
	}
	want := []int16{1, 2, 3, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("take(4)[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	got, err = q.take(2)
	if err != nil {
		t.Fatalf("take(2) error: %v", err)
	}
	if got[0] != 5 || got[1] != 6 {
		t.Fatalf("take(2) = %v, want [5 6]", got)
	}
}

func TestPCMQueueTakeBlocksUntilFilled(t *testing.T) {
	q := newPCMQueue()
	q.push([]int16{1, 2})

	go func() {
		time.Sleep(20 * time.Millisecond)
		q.push([]int16{3, 4})
	}()

	got, err := q.take(4)
	if err != nil {
		t.Fatalf("take(4) error: %v", err)
	}
	if got[3] != 4 {
		t.Fatalf("take(4) = %v, want trailing sample 4", got)
	}
}

func TestPCMQueueCloseDrainsThenEOF(t *testing.T) {
	q := newPCMQueue()
	q.push([]int16{1, 2, 3, 4, 5})
	q.close()

	if _, err := q.take(4); err != nil {
		t.Fatalf("take(4) after close error: %v", err)
	}
	if _, err := q.take(4); !errors.Is(err, io.EOF) {
		t.Fatalf("take(4) on drained closed queue error = %v, want io.EOF", err)
	}
}

func TestPCMQueueCloseUnblocksTake(t *testing.T) {
	q := newPCMQueue()
	done := make(chan error, 1)
	go func() {
		_, err := q.take(8)
		done <- err
	}()

	time.Sleep(10 * time.Millisecond)
	q.close()

	select {
	case err := <-done:
		if !errors.Is(err, io.EOF) {
			t.Fatalf("take(8) error = %v, want io.EOF", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("take(8) still blocked after close")
	}
}
