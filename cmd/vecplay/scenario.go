package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/staticvec"
	"gopkg.in/yaml.v3"
)

// Scenario is a sequence of vector operations, replayed against a vector of
// strings.
//
//	capacity: 4
//	steps:
//	  - op: push
//	    value: "1"
//	  - op: at
//	    index: 5
//	  - op: resize
//	    size: 4
//	    value: "9"
type Scenario struct {
	Capacity int    `yaml:"capacity"`
	Steps    []Step `yaml:"steps"`
}

// Step is a single operation. Value, Index and Size are interpreted depending
// on Op. A resize without a value appends empty strings via Resize, a resize
// with a value (even "") appends copies of it via ResizeWith.
type Step struct {
	Op    string  `yaml:"op"`
	Value *string `yaml:"value,omitempty"`
	Index int     `yaml:"index,omitempty"`
	Size  int     `yaml:"size,omitempty"`
}

// Text returns the step's value, or "" if it has none.
func (step Step) Text() string {
	if step.Value == nil {
		return ""
	}
	return *step.Value
}

// ErrContractViolation signals a step which violated a precondition of the
// vector. Replay stops at such a step.
var ErrContractViolation = errors.New("vecplay: contract violation")

// ErrUnknownOp signals a step with an unsupported operation.
var ErrUnknownOp = errors.New("vecplay: unknown operation")

// ParseScenario decodes a YAML scenario.
func ParseScenario(r io.Reader) (Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Scenario{}, fmt.Errorf("vecplay: decoding scenario: %w", err)
	}
	return s, nil
}

// Replay runs all steps of s against a new vector, logging the outcome of
// every step to w. Errors reported by checked operations are logged and
// replay continues. The vector is returned even if replay stopped early.
func Replay(s Scenario, w io.Writer) (*staticvec.Vector[string], error) {
	v, err := staticvec.New[string](s.Capacity)
	if err != nil {
		return nil, err
	}
	for i, step := range s.Steps {
		out, err := apply(v, step)
		if errors.Is(err, ErrContractViolation) || errors.Is(err, ErrUnknownOp) {
			fmt.Fprintf(w, "%3d %-7s stopped: %v\n", i, step.Op, err)
			return v, fmt.Errorf("step %d: %w", i, err)
		}
		if err != nil {
			out = "error: " + err.Error()
		}
		fmt.Fprintf(w, "%3d %-7s %-24s %v\n", i, step.Op, out, v)
	}
	return v, nil
}

func apply(v *staticvec.Vector[string], step Step) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrContractViolation, r)
		}
	}()
	switch step.Op {
	case "push":
		v.Push(step.Text())
	case "trypush":
		err = v.TryPush(step.Text())
	case "pop":
		v.Pop()
	case "clear":
		v.Clear()
	case "resize":
		if step.Value == nil {
			v.Resize(step.Size)
		} else {
			v.ResizeWith(step.Size, *step.Value)
		}
	case "at":
		var p *string
		if p, err = v.At(step.Index); err == nil {
			out = *p
		}
	case "front":
		out = *v.Front()
	case "back":
		out = *v.Back()
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownOp, step.Op)
	}
	return out, err
}
