package workers

import (
	"errors"
	"reflect"
	"testing"
)

func TestRun(t *testing.T) {
	out := make([]int, 8)
	jobs := make([]func(), len(out))
	for i := range jobs {
		i := i
		jobs[i] = func() { out[i] = i * i }
	}

	if err := Run("test", jobs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{0, 1, 4, 9, 16, 25, 36, 49}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("got %v, want %v", out, want)
	}
}

func TestRunNoJobs(t *testing.T) {
	if err := Run("empty", nil); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRunPanic(t *testing.T) {
	done := make([]bool, 4)
	jobs := []func(){
		func() { done[0] = true },
		func() { panic("bad band") },
		func() { done[2] = true },
		func() { done[3] = true },
	}

	err := Run("test", jobs)
	if !errors.Is(err, ErrJobPanic) {
		t.Fatalf("got %v, want ErrJobPanic", err)
	}
	// the barrier still waits for the healthy jobs
	if !done[0] || !done[2] || !done[3] {
		t.Errorf("healthy jobs did not finish: %v", done)
	}
}
