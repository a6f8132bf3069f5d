package database

import "sync"

// GateState tracks the one-time schema initialization barrier.
type GateState int

const (
	GateUninitialized GateState = iota
	GateInitializing
	GateReady
	GateFailed
)

func (s GateState) String() string {
	switch s {
	case GateUninitialized:
		return "uninitialized"
	case GateInitializing:
		return "initializing"
	case GateReady:
		return "ready"
	case GateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Gate is the schema readiness barrier. It runs the migration batch exactly
// once per process; ready and failed are terminal. Callers gate every
// repository access on Ready.
type Gate struct {
	mu    sync.RWMutex
	state GateState
	err   error
}

func NewGate() *Gate {
	return &Gate{state: GateUninitialized}
}

// ReadyGate returns a gate already in the ready state, for stores whose
// schema is known to exist (tests, pre-migrated databases).
func ReadyGate() *Gate {
	return &Gate{state: GateReady}
}

// Run executes the schema batch and settles the gate. Calling Run on a
// settled gate is a no-op returning the settled outcome.
func (g *Gate) Run(db *DB) error {
	g.mu.Lock()
	switch g.state {
	case GateReady:
		g.mu.Unlock()
		return nil
	case GateFailed:
		err := g.err
		g.mu.Unlock()
		return err
	case GateInitializing:
		g.mu.Unlock()
		return nil
	}
	g.state = GateInitializing
	g.mu.Unlock()

	err := db.Migrate()

	g.mu.Lock()
	defer g.mu.Unlock()
	if err != nil {
		g.state = GateFailed
		g.err = err
		return err
	}
	g.state = GateReady
	return nil
}

func (g *Gate) State() GateState {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

func (g *Gate) Ready() bool {
	return g.State() == GateReady
}

// Err returns the schema failure, nil unless the gate is failed.
func (g *Gate) Err() error {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.err
}
