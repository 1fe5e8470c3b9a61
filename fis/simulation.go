package fis

import (
	"math"
)

// Simulation is a caller-side cursor over one System: Built until the first
// Compute, Evaluated afterwards, re-evaluated on every further Compute. It is
// not shared between goroutines; the System behind it may be.
type Simulation struct {
	system *System

	input    float64
	hasInput bool

	state  State
	result Result
	err    error
}

func NewSimulation(system *System) *Simulation {
	return &Simulation{
		system: system,
		state:  StateBuilt,
		result: Result{Output: math.NaN()},
	}
}

func (sim *Simulation) System() *System {
	return sim.system
}

func (sim *Simulation) State() State {
	return sim.state
}

func (sim *Simulation) SetInput(x float64) {
	sim.input = x
	sim.hasInput = true
}

func (sim *Simulation) Compute() error {
	if sim.system == nil {
		return ErrNoVariable
	}

	if !sim.hasInput {
		return ErrNoInput
	}

	r, err := sim.system.Evaluate(sim.input)
	if err != nil && r.Strengths == nil {
		return err
	}

	sim.result = r
	sim.err = err
	sim.state = StateEvaluated

	return err
}

// Output is the last computed crisp value; ok is false before the first Compute
// and when the last input fired no rule.
func (sim *Simulation) Output() (v float64, ok bool) {
	return sim.result.Output, sim.state == StateEvaluated && sim.result.Defined
}

func (sim *Simulation) Result() (Result, error) {
	return sim.result, sim.err
}
