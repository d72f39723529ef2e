package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-adaptive-raytracer/pkg/core"
	"github.com/df07/go-adaptive-raytracer/pkg/filter"
	"github.com/df07/go-adaptive-raytracer/pkg/log"
)

// Scheduler runs the adaptive sampling loop. Each pass is split into
// generate, trace and accumulate phases with a full barrier between them;
// pixels are partitioned into tiles so every pixel has a single writer.
//
// The scene's TraceStep is called from several workers at once and must be
// safe for concurrent use.
type Scheduler struct {
	config     RunConfig
	scene      core.Scene
	logger     log.Logger
	gate       VarianceGate
	toneMapper ToneMapper

	tiles       []*Tile
	accs        []PixelAccumulator // indexed y*width + x
	rays        []core.Ray         // this pass's ray per pixel
	issued      []bool             // whether rays[i] was generated this pass
	workerPool  *WorkerPool
	checkpoints *checkpointWriter

	clock func() time.Time
	ran   bool
}

// NewScheduler validates the configuration and allocates the accumulators
func NewScheduler(config RunConfig, scene core.Scene, newImage core.ImageFactory, logger log.Logger) (*Scheduler, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	pixels := config.Width * config.Height
	s := &Scheduler{
		config:     config,
		scene:      scene,
		logger:     logger,
		gate:       NewVarianceGate(config.ErrorThreshold),
		toneMapper: NewToneMapper(config.Width, config.Height, config.Gamma),
		tiles:      NewTileGrid(config.Width, config.Height, config.TileSize, config.Seed),
		accs:       make([]PixelAccumulator, pixels),
		rays:       make([]core.Ray, pixels),
		issued:     make([]bool, pixels),
		clock:      time.Now,
	}
	s.workerPool = NewWorkerPool(s.processTile, config.Workers, len(s.tiles))
	if config.CheckpointInterval > 0 {
		s.checkpoints = newCheckpointWriter(config.CheckpointPath, newImage, logger)
	}
	return s, nil
}

// Accumulators exposes the per-pixel sums, indexed y*width + x. They must
// only be read while Run is not executing a pass.
func (s *Scheduler) Accumulators() []PixelAccumulator {
	return s.accs
}

// Run executes passes until the sample budget is spent, the time limit is
// exceeded or ctx is cancelled, then tone maps and filters the result.
//
// The time limit and ctx are only checked between passes, so a slow pass
// can overshoot the budget.
func (s *Scheduler) Run(ctx context.Context) (*Result, error) {
	if s.ran {
		return nil, ErrAlreadyRun
	}
	s.ran = true

	start := s.clock()
	budget := s.config.SamplesPerPixel

	s.logger.Infof("starting %d passes over %dx%d pixels in %d tiles (using %d workers)",
		budget, s.config.Width, s.config.Height, len(s.tiles), s.workerPool.GetNumWorkers())

	s.workerPool.Start()
	defer s.workerPool.Stop()

	passes := 0
	reason := StopBudget
	for pass := 1; pass <= budget; pass++ {
		if ctx.Err() != nil {
			s.logger.Noticef("rendering cancelled before pass %d", pass)
			reason = StopCancelled
			break
		}
		if s.timeExpired(start) {
			s.logger.Noticef("time limit of %ds reached before pass %d", s.config.TimeLimit, pass)
			reason = StopTimeLimit
			break
		}

		passStart := s.clock()
		if err := s.runPass(pass); err != nil {
			return nil, err
		}
		passes = pass

		s.logger.Noticef("%d rays per pixel were sent", pass)
		s.logger.Debugf("pass %d completed in %v", pass, s.clock().Sub(passStart))

		if s.checkpointDue(pass) {
			s.checkpoints.Write(pass, s.toneMapper.Image(s.accs))
		}
	}

	stats := s.toneMapper.Statistics(s.accs)
	img := s.toneMapper.Image(s.accs)
	img = filter.GaussianBlur(img, s.config.BlurRadius)
	img = filter.Median(img, s.config.MedianWindow)

	written, failed := s.checkpoints.counts()
	return &Result{
		Image:              img,
		Stats:              stats,
		PassesCompleted:    passes,
		PassBudget:         budget,
		Elapsed:            s.clock().Sub(start),
		Stopped:            reason,
		CheckpointsWritten: written,
		CheckpointsFailed:  failed,
	}, nil
}

// timeExpired reports whether the run has been going longer than TimeLimit
func (s *Scheduler) timeExpired(start time.Time) bool {
	if s.config.TimeLimit == 0 {
		return false
	}
	return s.clock().Sub(start) > time.Duration(s.config.TimeLimit)*time.Second
}

func (s *Scheduler) checkpointDue(pass int) bool {
	return s.config.CheckpointInterval > 0 && pass%s.config.CheckpointInterval == 0
}

// runPass runs the three phases of one pass in order
func (s *Scheduler) runPass(pass int) error {
	for _, phase := range []Phase{PhaseGenerate, PhaseTrace, PhaseAccumulate} {
		if err := s.workerPool.RunPhase(s.tiles, phase, pass); err != nil {
			return err
		}
	}
	return nil
}

// processTile is the worker side of a phase
func (s *Scheduler) processTile(task TileTask) error {
	bounds := task.Tile.Bounds
	width := s.config.Width

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			i := y*width + x

			switch task.Phase {
			case PhaseGenerate:
				s.issued[i] = s.gate.ShouldSample(&s.accs[i], task.PassNumber)
				if s.issued[i] {
					random := task.Tile.Random
					jx := random.Float64() - 0.5
					jy := random.Float64() - 0.5
					s.rays[i] = PrimaryRay(x, y, width, s.config.Height, jx, jy)
				}

			case PhaseTrace:
				if !s.issued[i] {
					continue
				}
				ray := s.rays[i]
				for ray.IsActive() {
					var err error
					ray, err = s.scene.TraceStep(ray, task.Tile.Sampler)
					if err != nil {
						return fmt.Errorf("%w: pixel (%d,%d) pass %d: %w", ErrTrace, x, y, task.PassNumber, err)
					}
				}
				s.rays[i] = ray

			case PhaseAccumulate:
				if s.issued[i] {
					s.accs[i].AddSample(s.rays[i].Color)
				}
			}
		}
	}
	return nil
}
