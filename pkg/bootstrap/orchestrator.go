package bootstrap

import (
	"context"

	"github.com/arthur-debert/zshboot/pkg/errors"
	"github.com/arthur-debert/zshboot/pkg/logging"
	"github.com/rs/zerolog"
)

// Reporter receives each result as soon as it is known
type Reporter interface {
	Report(step Step, res Result)
}

// Orchestrator runs steps in order
type Orchestrator struct {
	Steps    []Step
	DryRun   bool
	Only     []string
	Reporter Reporter
	Logger   zerolog.Logger
}

// New creates an orchestrator for steps logging as the bootstrap component
func New(steps []Step) *Orchestrator {
	return &Orchestrator{Steps: steps, Logger: logging.GetLogger("bootstrap")}
}

// Run evaluates every selected step. The returned error is non-nil only for
// fatal failures; the report then ends with the failing step.
func (o *Orchestrator) Run(ctx context.Context) (Report, error) {
	done := logging.LogOperationStart(o.Logger, "bootstrap")
	defer done()

	report := Report{DryRun: o.DryRun}
	for _, step := range o.Steps {
		if !o.selected(step) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return report, errors.Wrap(err, errors.ErrInternal, "bootstrap interrupted").AsFatal()
		}

		res, err := o.runStep(ctx, step)
		report.Results = append(report.Results, res)
		if o.Reporter != nil {
			o.Reporter.Report(step, res)
		}
		if err == nil {
			continue
		}

		if step.Fatal {
			o.Logger.Error().Err(err).Str("step", step.Name).Msg("Fatal step failed, aborting")
			return report, errors.Wrapf(err, errors.ErrStepFatal, "step %s failed", step.Name).
				WithDetail("step", step.Name).
				AsFatal()
		}
		o.Logger.Warn().Err(err).Str("step", step.Name).Msg("Step failed, continuing")
	}
	return report, nil
}

func (o *Orchestrator) runStep(ctx context.Context, step Step) (Result, error) {
	res := Result{Step: step.Name, Fatal: step.Fatal}

	if step.Check != nil && step.Check() {
		o.Logger.Debug().Str("step", step.Name).Msg("Already satisfied")
		res.Outcome = Satisfied
		if o.DryRun {
			return res, nil
		}
		return o.verify(ctx, step, res)
	}

	if o.DryRun {
		res.Outcome = Planned
		return res, nil
	}

	if step.Install == nil {
		err := errors.Newf(errors.ErrStepInstall, "%s is missing and has no installer", step.Name)
		return fail(res, err), err
	}

	o.Logger.Info().Str("step", step.Name).Msg("Installing")
	if err := step.Install(ctx); err != nil {
		wrapped := errors.Wrapf(err, errors.ErrStepInstall, "install %s", step.Name)
		return fail(res, wrapped), wrapped
	}
	res.Outcome = Installed
	return o.verify(ctx, step, res)
}

func (o *Orchestrator) verify(ctx context.Context, step Step, res Result) (Result, error) {
	if step.Verify == nil {
		return res, nil
	}
	if err := step.Verify(ctx); err != nil {
		return fail(res, err), err
	}
	return res, nil
}

func (o *Orchestrator) selected(step Step) bool {
	if len(o.Only) == 0 {
		return true
	}
	for _, name := range o.Only {
		if name == step.Name || name == step.Group() {
			return true
		}
	}
	return false
}

func fail(res Result, err error) Result {
	res.Outcome = Failed
	res.Error = err.Error()
	return res
}
