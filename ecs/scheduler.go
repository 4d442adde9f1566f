package ecs

import "fmt"

// System updates a world. A returned error aborts the rest of the stage.
type System interface {
	Update(w *World) error
}

// SystemFunc adapts a plain function to System.
type SystemFunc func(w *World) error

func (f SystemFunc) Update(w *World) error {
	return f(w)
}

// Stage names a group of systems run together.
type Stage string

const (
	Startup   Stage = "startup"
	PreUpdate Stage = "pre_update"
	Update    Stage = "update"
	Last      Stage = "last"
)

// Scheduler keeps systems per stage in registration order.
type Scheduler struct {
	systems map[Stage][]System
}

func NewScheduler() *Scheduler {
	return &Scheduler{systems: make(map[Stage][]System)}
}

func (s *Scheduler) Add(stage Stage, systems ...System) {
	for _, system := range systems {
		if system == nil {
			continue
		}
		s.systems[stage] = append(s.systems[stage], system)
	}
}

// Run executes every system of stage in order.
func (s *Scheduler) Run(stage Stage, w *World) error {
	for _, system := range s.systems[stage] {
		if err := system.Update(w); err != nil {
			return fmt.Errorf("%s: %s: %w", stage, systemName(system), err)
		}
	}
	return nil
}

func (s *Scheduler) Systems(stage Stage) []System {
	systems := make([]System, 0, len(s.systems[stage]))
	return append(systems, s.systems[stage]...)
}

// Chain groups systems that must run back to back in the given order.
func Chain(systems ...System) System {
	copied := make([]System, 0, len(systems))
	for _, system := range systems {
		if system != nil {
			copied = append(copied, system)
		}
	}
	return chain(copied)
}

type chain []System

func (c chain) Name() string {
	return "chain"
}

func (c chain) Update(w *World) error {
	for _, system := range c {
		if err := system.Update(w); err != nil {
			return fmt.Errorf("%s: %w", systemName(system), err)
		}
	}
	return nil
}

func systemName(system System) string {
	if n, ok := system.(interface{ Name() string }); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", system)
}
