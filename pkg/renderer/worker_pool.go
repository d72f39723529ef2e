package renderer

import (
	"runtime"
	"sync"
)

// Phase is one of the three barrier-separated steps of a pass
type Phase int

const (
	PhaseGenerate Phase = iota
	PhaseTrace
	PhaseAccumulate
)

func (p Phase) String() string {
	switch p {
	case PhaseGenerate:
		return "generate"
	case PhaseTrace:
		return "trace"
	case PhaseAccumulate:
		return "accumulate"
	default:
		return "unknown"
	}
}

// TileTask asks a worker to run one phase of one pass over a tile
type TileTask struct {
	Tile       *Tile
	Phase      Phase
	PassNumber int
	TaskID     int
}

// TileResult reports a finished task
type TileResult struct {
	TaskID int
	Error  error
}

// TileHandler does the work for a task
type TileHandler func(task TileTask) error

// WorkerPool manages parallel tile processing
type WorkerPool struct {
	taskQueue   chan TileTask
	resultQueue chan TileResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual tile tasks
type Worker struct {
	ID          int
	handler     TileHandler
	taskQueue   chan TileTask
	resultQueue chan TileResult
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// maxTasks bounds the number of tasks in flight at once.
func NewWorkerPool(handler TileHandler, numWorkers, maxTasks int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan TileTask, maxTasks),
		resultQueue: make(chan TileResult, maxTasks),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			handler:     handler,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		}
		wp.workers = append(wp.workers, worker)
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a tile task to the worker pool
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed tile result
func (wp *WorkerPool) GetResult() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// RunPhase submits one task per tile and waits for all of them. It is the
// barrier between phases: nothing of the next phase starts before every
// tile of this one is done. The first task error is returned after all
// results have been collected.
func (wp *WorkerPool) RunPhase(tiles []*Tile, phase Phase, pass int) error {
	for i, tile := range tiles {
		wp.SubmitTask(TileTask{
			Tile:       tile,
			Phase:      phase,
			PassNumber: pass,
			TaskID:     i,
		})
	}

	var firstErr error
	for range tiles {
		result, ok := wp.GetResult()
		if !ok {
			return ErrPoolClosed
		}
		if result.Error != nil && firstErr == nil {
			firstErr = result.Error
		}
	}
	return firstErr
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		w.resultQueue <- TileResult{
			TaskID: task.TaskID,
			Error:  w.handler(task),
		}
	}
}
