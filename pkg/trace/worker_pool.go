package trace

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/kerrlens/go-kerr-lensing/pkg/geodesic"
)

// rayTask is one impact parameter to trace, tagged with its slot in the
// output so results can be collected in input order.
type rayTask struct {
	index  int
	impact float64
}

// rayResult carries a traced sample back from a worker.
type rayResult struct {
	index  int
	sample Sample
}

// workerPool fans a sweep out over a fixed set of goroutines. Rays share no
// state, so workers need no coordination beyond the task and result channels.
type workerPool struct {
	taskQueue   chan rayTask
	resultQueue chan rayResult
	numWorkers  int
	wg          sync.WaitGroup
}

func newWorkerPool(numWorkers, numTasks int) *workerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &workerPool{
		taskQueue:   make(chan rayTask, numTasks),
		resultQueue: make(chan rayResult, numTasks),
		numWorkers:  numWorkers,
	}
}

func (wp *workerPool) start(req *Request, cfg geodesic.Config) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go func() {
			defer wp.wg.Done()
			for task := range wp.taskQueue {
				wp.resultQueue <- rayResult{
					index:  task.index,
					sample: traceOne(req, task.impact, cfg),
				}
			}
		}()
	}
}

func (wp *workerPool) stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// TraceParallel runs the same sweep as Trace across numWorkers goroutines
// (0 means one per CPU). Output is identical to the sequential sweep: rays
// are independent and each sample lands in its input-order slot.
func TraceParallel(req Request, numWorkers int) ([]Sample, error) {
	if req.Samples <= 0 {
		return nil, fmt.Errorf("sample count must be positive, got %d", req.Samples)
	}

	step := 0.0
	if req.Samples > 1 {
		step = (req.ImpactMax - req.ImpactMin) / float64(req.Samples-1)
	}

	pool := newWorkerPool(numWorkers, req.Samples)
	pool.start(&req, geodesic.DefaultConfig())

	for i := 0; i < req.Samples; i++ {
		pool.taskQueue <- rayTask{index: i, impact: req.ImpactMin + step*float64(i)}
	}
	pool.stop()

	out := make([]Sample, req.Samples)
	for result := range pool.resultQueue {
		out[result.index] = result.sample
	}
	return out, nil
}
