package jobs

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nordrens-as/planning-api/internal/auth"
	"github.com/nordrens-as/planning-api/internal/config"
	"github.com/nordrens-as/planning-api/internal/domain"
	"github.com/nordrens-as/planning-api/internal/metrics"
	"go.uber.org/zap"
)

// GenerationJobName is the name of the daily order generation job
const GenerationJobName = "order_generation"

// AssignmentJobName is the name of the order assignment job
const AssignmentJobName = "order_assignment"

// OrderGenerator defines the interface for running a generation pass.
// This interface allows the job to call the service without importing the service package directly.
type OrderGenerator interface {
	// RunDailyGeneration materializes due and projected orders for every
	// subscription inside the lookahead window. Per-subscription failures are
	// reported in the summary, not as an error.
	RunDailyGeneration(ctx context.Context, asOf time.Time) (*domain.GenerationSummary, error)

	// ForceRegenerate rebuilds the order series of a single subscription from
	// its start date.
	ForceRegenerate(ctx context.Context, subscriptionID uuid.UUID) (*domain.GenerationSummary, error)
}

// OrderAssigner defines the interface for running an assignment pass.
type OrderAssigner interface {
	// RunAssignmentPass matches every unassigned open order with the best
	// scoring active employee.
	RunAssignmentPass(ctx context.Context) (*domain.AssignmentSummary, error)
}

// GenerationJob runs the daily order generation pass for active subscriptions.
type GenerationJob struct {
	generator OrderGenerator
	logger    *zap.Logger
	timeout   time.Duration
}

// NewGenerationJob creates a new order generation job.
// The timeout controls how long one generation pass is allowed to run.
func NewGenerationJob(generator OrderGenerator, logger *zap.Logger, timeout time.Duration) *GenerationJob {
	return &GenerationJob{
		generator: generator,
		logger:    logger,
		timeout:   timeout,
	}
}

// Run executes the order generation job.
// This is called by the scheduler according to the cron expression.
func (j *GenerationJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()
	ctx = auth.WithCaller(ctx, auth.SystemCaller)

	metrics.JobRuns.WithLabelValues(GenerationJobName).Inc()

	start := time.Now()
	j.logger.Info("starting order generation job")

	summary, err := j.generator.RunDailyGeneration(ctx, time.Now().UTC())
	if err != nil {
		j.logger.Error("order generation job failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)))
		return
	}

	j.logger.Info("order generation job completed",
		zap.Int("processed", summary.Processed),
		zap.Int("failed", summary.Failed),
		zap.Int("skipped", summary.Skipped),
		zap.Int("orders_created", summary.OrdersCreated),
		zap.Duration("duration", time.Since(start)))
}

// AssignmentJob runs the assignment pass for unassigned open orders.
type AssignmentJob struct {
	assigner OrderAssigner
	logger   *zap.Logger
	timeout  time.Duration
}

// NewAssignmentJob creates a new order assignment job.
func NewAssignmentJob(assigner OrderAssigner, logger *zap.Logger, timeout time.Duration) *AssignmentJob {
	return &AssignmentJob{
		assigner: assigner,
		logger:   logger,
		timeout:  timeout,
	}
}

// Run executes the order assignment job.
func (j *AssignmentJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()
	ctx = auth.WithCaller(ctx, auth.SystemCaller)

	metrics.JobRuns.WithLabelValues(AssignmentJobName).Inc()

	start := time.Now()
	j.logger.Info("starting order assignment job")

	summary, err := j.assigner.RunAssignmentPass(ctx)
	if err != nil {
		j.logger.Error("order assignment job failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)))
		return
	}

	j.logger.Info("order assignment job completed",
		zap.Int("assigned", summary.Assigned),
		zap.Int("failed", summary.Failed),
		zap.Duration("duration", time.Since(start)))
}

// RegisterPlanningJobs registers the generation and assignment jobs with the
// scheduler using the cron expressions from the planner config. The assignment
// job is scheduled after the generation job so freshly created orders are
// picked up in the same morning window.
// If RunOnStartup is set, a generation pass runs immediately in a background
// goroutine so it doesn't block API startup.
func RegisterPlanningJobs(scheduler *Scheduler, generator OrderGenerator, assigner OrderAssigner, logger *zap.Logger, cfg config.PlannerConfig) error {
	generationJob := NewGenerationJob(generator, logger, cfg.JobTimeoutDuration())
	assignmentJob := NewAssignmentJob(assigner, logger, cfg.JobTimeoutDuration())

	if cfg.RunOnStartup {
		go func() {
			generationJob.Run()
			assignmentJob.Run()
		}()
	}

	if err := scheduler.AddJob(GenerationJobName, cfg.GenerationCron, generationJob.Run); err != nil {
		return err
	}
	return scheduler.AddJob(AssignmentJobName, cfg.AssignmentCron, assignmentJob.Run)
}
