package main

import (
	"github.com/adventsolve/aoc"
	"github.com/adventsolve/aoc/internal/day01"
	"github.com/adventsolve/aoc/internal/day02"
	"github.com/adventsolve/aoc/internal/day03"
	"github.com/adventsolve/aoc/internal/day04"
	"github.com/adventsolve/aoc/internal/day05"
	"github.com/adventsolve/aoc/internal/day06"
	"github.com/adventsolve/aoc/internal/day07"
)

func init() {
	aoc.Add(1, aoc.Solve(day01.PartOne), aoc.Solve(day01.PartTwo))
	aoc.Add(2, aoc.Solve(day02.PartOne), aoc.Solve(day02.PartTwo))
	aoc.Add(3, aoc.Solve(day03.PartOne), aoc.Solve(day03.PartTwo))
	aoc.Add(4, aoc.Solve(day04.PartOne), aoc.Solve(day04.PartTwo))
	aoc.Add(5, aoc.Solve(day05.PartOne), aoc.Solve(day05.PartTwo))
	aoc.Add(6, aoc.Solve(day06.PartOne), aoc.Solve(day06.PartTwo))
	aoc.Add(7, aoc.Solve(day07.PartOne), aoc.Solve(day07.PartTwo))
}
