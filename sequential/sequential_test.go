package sequential_test

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/exascience/adapt"
	"github.com/exascience/adapt/sequential"
)

func copyOut(s adapt.Slice[int], _ int) (adapt.List[int], adapt.Slice[int], bool) {
	return adapt.List[int](s.Clone()), s, false
}

func TestWorkOrder(t *testing.T) {
	var visited []adapt.Range[int]
	record := func(r adapt.Range[int], _ int) (adapt.Unit, adapt.Range[int], bool) {
		visited = append(visited, r)
		return adapt.Unit{}, r, false
	}
	sequential.Work(adapt.WithPolicy(adapt.NewRange(0, 10), adapt.Default), 4, record)
	require.Equal(t, []adapt.Range[int]{
		adapt.NewRange(0, 2),
		adapt.NewRange(2, 5),
		adapt.NewRange(5, 7),
		adapt.NewRange(7, 10),
	}, visited)
}

func TestWorkSingleBatch(t *testing.T) {
	var calls int
	f := func(r adapt.Range[int], limit int) (adapt.Sum[int], adapt.Range[int], bool) {
		calls++
		require.Equal(t, r.BaseLength(), limit)
		return adapt.Sum[int]{Value: limit}, r, false
	}
	got := sequential.Work(adapt.WithPolicy(adapt.NewRange(0, 10), adapt.Default), 1, f)
	require.Equal(t, 10, got.Value)
	require.Equal(t, 1, calls)
}

func TestWorkUnsupportedPolicy(t *testing.T) {
	require.Panics(t, func() {
		sequential.Work(adapt.WithPolicy(adapt.SliceOf([]int{1}), adapt.Policy(1)), 0, copyOut)
	})
}

func TestWorkProperties(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("fused lists equal the undivided sequence", prop.ForAll(
		func(data []int, n int) bool {
			got := sequential.Work(adapt.WithPolicy(adapt.SliceOf(data), adapt.Default), n, copyOut)
			return slices.Equal([]int(got), data)
		},
		gen.SliceOf(gen.Int()),
		gen.IntRange(0, 64),
	))

	properties.TestingRun(t)
}

type indexWork struct {
	todo    adapt.Range[int]
	out     adapt.List[int]
	batches *[]adapt.Range[int]
	started bool
}

func (w *indexWork) Work(limit int) {
	if !w.started {
		*w.batches = append(*w.batches, w.todo)
		w.started = true
	}
	for i := range adapt.CutLeftAt(&w.todo, min(limit, 3)).All() {
		w.out = append(w.out, i)
	}
}

func (w *indexWork) Output() adapt.List[int] {
	return w.out
}

func (w *indexWork) RemainingLength() int {
	return w.todo.BaseLength()
}

func (w *indexWork) Split() (*indexWork, *indexWork) {
	left, right := w.todo.Divide()
	return &indexWork{todo: left, out: w.out, batches: w.batches}, &indexWork{todo: right, batches: w.batches}
}

func TestAdaptiveOrder(t *testing.T) {
	var batches []adapt.Range[int]
	w := &indexWork{todo: adapt.NewRange(0, 10), batches: &batches}
	got := sequential.Adaptive[*indexWork, adapt.List[int]](w, adapt.Default, 4)
	require.Equal(t, adapt.List[int]{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
	require.Equal(t, []adapt.Range[int]{
		adapt.NewRange(0, 2),
		adapt.NewRange(2, 5),
		adapt.NewRange(5, 7),
		adapt.NewRange(7, 10),
	}, batches)
}

func TestAdaptiveUnsupportedPolicy(t *testing.T) {
	var batches []adapt.Range[int]
	require.Panics(t, func() {
		sequential.Adaptive[*indexWork, adapt.List[int]](&indexWork{todo: adapt.NewRange(0, 3), batches: &batches}, adapt.Policy(1), 0)
	})
}

func TestAdaptiveProperties(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("split outputs fuse to the undivided output", prop.ForAll(
		func(length, n int) bool {
			var batches []adapt.Range[int]
			w := &indexWork{todo: adapt.NewRange(0, length), batches: &batches}
			got := sequential.Adaptive[*indexWork, adapt.List[int]](w, adapt.Default, n)
			return slices.Equal([]int(got), slices.Collect(adapt.NewRange(0, length).All()))
		},
		gen.IntRange(0, 200),
		gen.IntRange(0, 64),
	))

	properties.TestingRun(t)
}
