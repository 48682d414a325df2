// Package pipe runs a batch job as a series of named stages, stopping on the first error
package pipe

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Op is the common pipe operation
type Op interface {
	Do() error
}

// OpFunc makes it easy to wrap an anonymous function into an Op
type OpFunc func() error

// Do implements the Op interface
func (o OpFunc) Do() error {
	return o()
}

// Stage is an Op with a name used in logs and error messages
type Stage struct {
	Name string
	Op   Op
}

// NewStage wraps fn into a named Stage
func NewStage(name string, fn func() error) Stage {
	return Stage{Name: name, Op: OpFunc(fn)}
}

// Stages runs each Stage in series, stopping on the first error
type Stages []Stage

// Run executes every stage in order. The returned error is annotated with the failed stage's name.
// Use errors.Cause to recover the original error.
func (s Stages) Run(logger *zap.Logger) error {
	for _, stage := range s {
		logger.Debug("Running stage", zap.String("stage", stage.Name))
		if err := stage.Op.Do(); err != nil {
			return errors.Wrapf(err, "Failed to %s", stage.Name)
		}
	}
	return nil
}
