// Package stress drives the containers from configurable sets of
// pushing and popping goroutines and checks that nothing is lost or
// duplicated along the way.
package stress

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Tankmaster48/conq/log"
	"github.com/Tankmaster48/conq/types/queue"
	"github.com/Tankmaster48/conq/types/stack"
	"github.com/Tankmaster48/conq/utils/toolutils"
)

// Runner executes one stress workload.
type Runner struct {
	config *Config
}

// Result summarizes a completed workload.
type Result struct {
	Pushed    int64
	Popped    int64
	PushedSum int64
	PoppedSum int64
	Elapsed   time.Duration
}

func NewRunner(config *Config) (*Runner, error) {
	if err := config.Parse(); err != nil {
		return nil, fmt.Errorf("invalid stress config: %w", err)
	}
	return &Runner{config: config}, nil
}

func (r *Runner) String() string {
	return "stress-" + r.config.Container
}

// Run executes the workload and verifies conservation: every pushed
// value must be popped exactly once.
func (r *Runner) Run() (*Result, error) {
	log.Info(r, "Starting workload",
		"pushers", r.config.Pushers,
		"poppers", r.config.Poppers,
		"ops", r.config.Ops)

	start := time.Now()
	var res *Result
	switch r.config.Container {
	case ContainerQueue:
		res = r.runQueue()
	case ContainerStack:
		res = r.runStack()
	default:
		return nil, fmt.Errorf("unknown container %q", r.config.Container)
	}
	res.Elapsed = time.Since(start)

	if res.Popped != res.Pushed || res.PoppedSum != res.PushedSum {
		log.Error(r, "Conservation violated",
			"pushed", res.Pushed, "popped", res.Popped)
		return res, fmt.Errorf("conservation violated: pushed %d (sum %d), popped %d (sum %d)",
			res.Pushed, res.PushedSum, res.Popped, res.PoppedSum)
	}

	log.Info(r, "Workload complete", "elapsed", res.Elapsed)
	return res, nil
}

// Report prints the result as aligned status lines.
func (r *Runner) Report(w io.Writer, res *Result) {
	p := toolutils.StatusPrinter{Out: w, Padding: 12}
	p.Print("container", r.config.Container)
	p.Print("pushed", res.Pushed)
	p.Print("popped", res.Popped)
	p.Print("elapsed", res.Elapsed)
	opsPerSec := float64(res.Pushed+res.Popped) / res.Elapsed.Seconds()
	p.Print("ops/sec", fmt.Sprintf("%.0f", opsPerSec))
}

func (r *Runner) runQueue() *Result {
	const sentinel = int64(-1)

	q := queue.New[int64]()
	res := &Result{}

	var popWg sync.WaitGroup
	for i := 0; i < r.config.Poppers; i++ {
		popWg.Add(1)
		go func() {
			defer popWg.Done()
			for {
				v := q.WaitPop()
				if v == sentinel {
					return
				}
				atomic.AddInt64(&res.Popped, 1)
				atomic.AddInt64(&res.PoppedSum, v)
			}
		}()
	}

	var pushWg sync.WaitGroup
	for p := 0; p < r.config.Pushers; p++ {
		pushWg.Add(1)
		go func(p int) {
			defer pushWg.Done()
			for i := 0; i < r.config.Ops; i++ {
				v := int64(p*r.config.Ops + i)
				q.Push(v)
				atomic.AddInt64(&res.Pushed, 1)
				atomic.AddInt64(&res.PushedSum, v)
			}
		}(p)
	}
	pushWg.Wait()

	for i := 0; i < r.config.Poppers; i++ {
		q.Push(sentinel)
	}
	popWg.Wait()
	return res
}

func (r *Runner) runStack() *Result {
	s := stack.New[int64]()
	res := &Result{}
	pushersDone := make(chan struct{})

	var popWg sync.WaitGroup
	for i := 0; i < r.config.Poppers; i++ {
		popWg.Add(1)
		go func() {
			defer popWg.Done()
			for {
				v, ok := s.Pop().Get()
				if !ok {
					select {
					case <-pushersDone:
						if !s.Pop().IsSet() {
							return
						}
					default:
					}
					continue
				}
				atomic.AddInt64(&res.Popped, 1)
				atomic.AddInt64(&res.PoppedSum, v)
			}
		}()
	}

	var pushWg sync.WaitGroup
	for p := 0; p < r.config.Pushers; p++ {
		pushWg.Add(1)
		go func(p int) {
			defer pushWg.Done()
			for i := 0; i < r.config.Ops; i++ {
				v := int64(p*r.config.Ops + i)
				s.Push(v)
				atomic.AddInt64(&res.Pushed, 1)
				atomic.AddInt64(&res.PushedSum, v)
			}
		}(p)
	}
	pushWg.Wait()
	close(pushersDone)
	popWg.Wait()

	s.Drain()
	return res
}
