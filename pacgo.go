// pacgo.go
package pacgo

import (
	"context"

	"pacgo/pkg/backend"
	"pacgo/pkg/engine"
	"pacgo/pkg/op"
	"pacgo/pkg/run"
)

// Re-export core types for convenience
type (
	Operation        = op.Operation
	Verb             = op.Verb
	Flag             = op.Flag
	Backend          = backend.Backend
	CommandStep      = backend.CommandStep
	CommandTemplate  = backend.CommandTemplate
	TranslateOptions = backend.TranslateOptions
	Options          = engine.Options
	ExecutionResult  = engine.ExecutionResult
	StepResult       = engine.StepResult
	Overall          = engine.Overall
)

// Re-export verbs
const (
	VerbInstall = op.VerbInstall
	VerbSync    = op.VerbSync
	VerbSearch  = op.VerbSearch
	VerbUpgrade = op.VerbUpgrade
	VerbClean   = op.VerbClean
	VerbQuery   = op.VerbQuery
	VerbRemove  = op.VerbRemove
	VerbUpdate  = op.VerbUpdate
)

// Re-export execution outcomes
const (
	OverallSuccess        = engine.OverallSuccess
	OverallFailure        = engine.OverallFailure
	OverallPartialFailure = engine.OverallPartialFailure
	OverallCancelled      = engine.OverallCancelled
)

// Manager is the library entry point: a registry of the package managers
// known on this host plus an engine that runs operations through them.
// The CLI builds the same pieces itself to control printing.
type Manager struct {
	registry *backend.Registry
	engine   *engine.Engine
}

// NewManager creates a manager for the current operating system.
func NewManager() *Manager {
	registry := backend.NewRegistry()
	return &Manager{
		registry: registry,
		engine:   engine.New(registry, &run.OSRunner{}, nil),
	}
}

// Execute runs one operation through the selected backend.
func (m *Manager) Execute(ctx context.Context, operation Operation, opts Options) (*ExecutionResult, error) {
	result, err := m.engine.Execute(ctx, operation, opts)
	if err != nil {
		return nil, &Error{Op: operation.String(), Backend: opts.Backend, Err: err}
	}
	return result, nil
}

// Available returns the package managers whose binaries resolve on this
// host, most preferred first.
func (m *Manager) Available() []Backend {
	return m.registry.Available()
}

// Select resolves a backend by name, or the preferred available one when
// name is empty.
func (m *Manager) Select(name string) (Backend, error) {
	return m.registry.Select(name)
}
