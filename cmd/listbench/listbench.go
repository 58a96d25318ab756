package main

import (
	"flag"
	"sort"
	"time"

	"github.com/emirpasic/gods/v2/lists/doublylinkedlist"
	"gonum.org/v1/gonum/stat"

	"github.com/minhle92/list-playground/common/arena"
	"github.com/minhle92/list-playground/common/deque"
	"github.com/minhle92/list-playground/common/workload"
	"github.com/minhle92/list-playground/utils"
)

type CmdlineOpts struct {
	Seed  string
	Ops   int
	Color bool
}

var cmdLineOpts = CmdlineOpts{}

func flagInit() {
	flag.StringVar(&cmdLineOpts.Seed, "seed", "bench", "workload seed")
	flag.IntVar(&cmdLineOpts.Ops, "n", 200000, "number of operations")
	flag.BoolVar(&cmdLineOpts.Color, "color", false, "colorize log output")
}

// target is one deque representation under measurement.
type target struct {
	name  string
	apply func(op workload.Op)
	done  func()
}

func cellTarget() target {
	d := deque.New[int]()
	return target{
		name: "cell-deque",
		apply: func(op workload.Op) {
			switch op.Kind {
			case workload.PushFront:
				d.PushFront(op.Value)
			case workload.PushBack:
				d.PushBack(op.Value)
			case workload.PopFront:
				d.PopFront()
			case workload.PopBack:
				d.PopBack()
			}
		},
		done: d.Drain,
	}
}

func arenaTarget() target {
	d := arena.New[int]()
	return target{
		name: "arena-deque",
		apply: func(op workload.Op) {
			switch op.Kind {
			case workload.PushFront:
				d.PushFront(op.Value)
			case workload.PushBack:
				d.PushBack(op.Value)
			case workload.PopFront:
				d.PopFront()
			case workload.PopBack:
				d.PopBack()
			}
		},
		done: func() {},
	}
}

func godsTarget() target {
	l := doublylinkedlist.New[int]()
	return target{
		name: "gods-dll",
		apply: func(op workload.Op) {
			switch op.Kind {
			case workload.PushFront:
				l.Prepend(op.Value)
			case workload.PushBack:
				l.Append(op.Value)
			case workload.PopFront:
				if l.Size() > 0 {
					l.Remove(0)
				}
			case workload.PopBack:
				if n := l.Size(); n > 0 {
					l.Remove(n - 1)
				}
			}
		},
		done: func() {},
	}
}

func runTarget(tg target, ops []workload.Op) {
	lat := make([]float64, len(ops))
	for i, op := range ops {
		start := time.Now()
		tg.apply(op)
		lat[i] = float64(time.Since(start).Nanoseconds())
	}
	tg.done()
	sort.Float64s(lat)
	utils.LogInfo("%v: n=%v mean=%.1fns stddev=%.1fns p50=%.0fns p99=%.0fns",
		tg.name, len(ops),
		stat.Mean(lat, nil),
		stat.StdDev(lat, nil),
		stat.Quantile(0.5, stat.Empirical, lat, nil),
		stat.Quantile(0.99, stat.Empirical, lat, nil))
}

func main() {
	flagInit()
	flag.Parse()
	utils.SetColorPrint(cmdLineOpts.Color)
	if cmdLineOpts.Ops <= 0 {
		utils.LogErro("invalid op count: %v", cmdLineOpts.Ops)
		return
	}
	ops := workload.Sequence(cmdLineOpts.Seed, cmdLineOpts.Ops)
	utils.LogInfo("replaying %v ops, seed %q", len(ops), cmdLineOpts.Seed)
	for _, tg := range []target{cellTarget(), arenaTarget(), godsTarget()} {
		runTarget(tg, ops)
	}
}
