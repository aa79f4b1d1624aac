package services

import "sync"

type Feature string

const (
	FeatureOrders  Feature = "orders"
	FeatureTopups  Feature = "topups"
	FeatureGeneral Feature = "general"
)

// Gate holds the maintenance flags. They are process-lifetime state: a
// restart re-enables everything, which matches how the shop is operated.
type Gate struct {
	mu    sync.RWMutex
	flags map[Feature]bool
}

func NewGate() *Gate {
	return &Gate{flags: map[Feature]bool{
		FeatureOrders:  true,
		FeatureTopups:  true,
		FeatureGeneral: true,
	}}
}

// Maintenance is the process-wide gate consulted before order and topup
// operations.
var Maintenance = NewGate()

// Allowed reports whether the feature class is currently enabled. Unknown
// features are allowed; the gate only blocks what admins explicitly closed.
func (g *Gate) Allowed(f Feature) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	enabled, ok := g.flags[f]
	return !ok || enabled
}

// Set toggles a feature class. Admin only.
func (g *Gate) Set(actorID int64, f Feature, enabled bool) error {
	if !IsAdmin(actorID) {
		return ErrPermissionDenied
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.flags[f]; !ok {
		return ErrFeatureNotFound
	}
	g.flags[f] = enabled
	return nil
}

// Snapshot returns a copy of the current flags for status displays.
func (g *Gate) Snapshot() map[Feature]bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make(map[Feature]bool, len(g.flags))
	for f, enabled := range g.flags {
		out[f] = enabled
	}
	return out
}

// checkMaintenance returns a MaintenanceError when the feature is closed.
// Called before any side effect so a gated operation leaves zero traces.
func checkMaintenance(f Feature) error {
	if !Maintenance.Allowed(f) {
		return &MaintenanceError{Feature: f}
	}
	return nil
}
