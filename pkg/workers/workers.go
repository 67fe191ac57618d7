package workers

import (
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/1F47E/go-mandelreel/pkg/logger"
)

var log = logger.Log

var ErrJobPanic = errors.New("job panicked")

// Run starts one goroutine per job and waits for all of them.
// Jobs must not share mutable memory, there is no locking here.
// A panicking job does not stop the others; once every job has
// returned, the first panic is reported as an error.
func Run(name string, jobs []func()) error {
	wg := sync.WaitGroup{}
	errs := make([]error, len(jobs))

	now := time.Now()
	for i, job := range jobs {
		wg.Add(1)
		i, job := i, job
		go func() {
			defer wg.Done()
			errs[i] = runJob(job)
		}()
	}

	// barrier, nothing is visible to the caller before every job is done
	wg.Wait()
	log.Debugf("%s: %d workers done. Took time: %s", name, len(jobs), time.Since(now))

	for i, err := range errs {
		if err != nil {
			return fmt.Errorf("%s worker #%d: %w", name, i+1, err)
		}
	}
	return nil
}

func runJob(job func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Debugf("recovered: %v\n%s", r, debug.Stack())
			err = fmt.Errorf("%w: %v", ErrJobPanic, r)
		}
	}()
	job()
	return nil
}
