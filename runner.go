package aoc

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Sample is the expected output for a day's example input.
// An empty want skips that part.
type Sample struct {
	File    string
	PartOne string
	PartTwo string
}

// Printer writes one labelled answer.
type Printer interface {
	PrintAnswer(label string, answer any) error
}

// Runner loads inputs from Inputs and runs registered days.
type Runner struct {
	Inputs     string
	Samples    map[int]Sample
	SkipSample bool
	Printer    Printer
	Log        *zap.Logger
}

func (r *Runner) log() *zap.Logger {
	if r.Log == nil {
		return zap.NewNop()
	}
	return r.Log
}

// Run solves day's puzzle input and prints both answers. If a sample is
// configured for the day it is checked first, and a mismatch stops the run.
func (r *Runner) Run(day int) error {
	d, err := Lookup(day)
	if err != nil {
		return err
	}
	if _, ok := r.Samples[day]; ok && !r.SkipSample {
		if err := r.CheckSample(d); err != nil {
			return err
		}
	}
	return r.runFile(d, InputName(day))
}

// RunExample solves day's n-th example input and prints both answers.
func (r *Runner) RunExample(day, n int) error {
	d, err := Lookup(day)
	if err != nil {
		return err
	}
	return r.runFile(d, ExampleName(day, n))
}

// CheckSample solves the day's configured example and compares the
// answers against the expected ones.
func (r *Runner) CheckSample(d Day) error {
	s, ok := r.Samples[d.ID]
	if !ok {
		return fmt.Errorf("day %d: %w", d.ID, ErrNoSample)
	}
	input, err := Load(r.Inputs, Or(s.File, ExampleName(d.ID, 0)))
	if err != nil {
		return err
	}
	for _, p := range []struct {
		name string
		fn   Part
		want string
	}{
		{"part one", d.PartOne, s.PartOne},
		{"part two", d.PartTwo, s.PartTwo},
	} {
		if p.want == "" {
			continue
		}
		v, err := p.fn(input)
		if err != nil {
			return fmt.Errorf("day %d %s sample: %w", d.ID, p.name, err)
		}
		if got := fmt.Sprint(v); got != p.want {
			r.log().Warn("sample mismatch",
				zap.Int("day", d.ID), zap.String("part", p.name),
				zap.String("got", got), zap.String("want", p.want))
			return &SampleMismatchError{Day: d.ID, Part: p.name, Got: got, Want: p.want}
		}
	}
	r.log().Info("sample ok", zap.Int("day", d.ID))
	return nil
}

func (r *Runner) runFile(d Day, name string) error {
	input, err := Load(r.Inputs, name)
	if err != nil {
		return err
	}
	r.log().Debug("loaded input", zap.Int("day", d.ID), zap.String("file", name), zap.Int("bytes", len(input)))

	for _, p := range []struct {
		label string
		fn    Part
	}{
		{"Part one", d.PartOne},
		{"Part two", d.PartTwo},
	} {
		t0 := time.Now()
		v, err := p.fn(input)
		if err != nil {
			return fmt.Errorf("day %d %s: %w", d.ID, p.label, err)
		}
		r.log().Debug("solved",
			zap.Int("day", d.ID), zap.String("part", p.label),
			zap.Duration("took", time.Since(t0).Round(time.Microsecond)))
		if err := r.Printer.PrintAnswer(p.label, v); err != nil {
			return err
		}
	}
	return nil
}
