package runner

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/cairokit/stone-runner/internal/stone-runner/models"
)

// Job is one independent prover invocation within a batch.
type Job struct {
	PublicInput *models.PublicInput
	Memory      []byte
	Trace       []byte
	Config      *models.ProverConfig
	Parameters  *models.ProverParameters
}

// RunAll proves every job concurrently, at most limit at a time (no limit
// when limit <= 0). Each job owns its own working directory and child
// process. The first failure cancels the remaining jobs and is returned;
// on success proofs are returned in job order.
func RunAll(ctx context.Context, binary string, jobs []Job, limit int) ([]*models.Proof, error) {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	proofs := make([]*models.Proof, len(jobs))
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			proof, err := Run(ctx, binary, job.PublicInput, job.Memory, job.Trace, job.Config, job.Parameters)
			if err != nil {
				return err
			}
			proofs[i] = proof
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return proofs, nil
}
