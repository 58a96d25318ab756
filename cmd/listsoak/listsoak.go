// listsoak churns deques forever to hunt ownership leaks: each round builds
// a deque from a seeded workload and drains it, then the live-cell count is
// logged. Running with -leak skips the drain, which makes the next/prev
// ownership cycle visible as a monotonically growing live count.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/sevlyar/go-daemon"

	"github.com/minhle92/list-playground/common/cell"
	"github.com/minhle92/list-playground/common/deque"
	"github.com/minhle92/list-playground/common/workload"
	"github.com/minhle92/list-playground/utils"
)

type CmdlineOpts struct {
	Seed    string
	Batch   int
	Report  int
	LogPath string
	Daemon  bool
	Leak    bool
}

var cmdLineOpts = CmdlineOpts{}

func flagInit() {
	flag.StringVar(&cmdLineOpts.Seed, "seed", "soak", "workload seed prefix")
	flag.IntVar(&cmdLineOpts.Batch, "batch", 4096, "operations per round")
	flag.IntVar(&cmdLineOpts.Report, "report", 100, "rounds between live-count reports")
	flag.StringVar(&cmdLineOpts.LogPath, "log", "", "log file path")
	flag.BoolVar(&cmdLineOpts.Daemon, "daemon", false, "run as daemon")
	flag.BoolVar(&cmdLineOpts.Leak, "leak", false, "skip draining to demonstrate the ownership-cycle leak")
}

func soak(ctx context.Context) {
	round := 0
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		seed := fmt.Sprintf("%s.%d", cmdLineOpts.Seed, round)
		d := deque.New[int]()
		for _, op := range workload.Sequence(seed, cmdLineOpts.Batch) {
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
		}
		if !cmdLineOpts.Leak {
			d.Drain()
		}
		round++
		if round%cmdLineOpts.Report == 0 {
			utils.LogInfo("round %v: live cells %v", round, cell.Live())
		}
	}
}

func uniqPidFile() string {
	src := rand.NewSource(time.Now().UnixNano())
	r := rand.New(src)
	return fmt.Sprintf("listsoak.%d.pid", r.Intn(10000))
}

func run() {
	if len(cmdLineOpts.LogPath) > 0 {
		f, _ := os.OpenFile(cmdLineOpts.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		log.SetOutput(f)
		utils.RedirectFile(os.Stderr, f)
		defer f.Close()
	}
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		soak(ctx)
		cancel()
	}()
	select {
	case <-ctx.Done():
	case <-utils.WaitTerminate():
	}
	utils.LogInfo("soak exit, live cells: %v", cell.Live())
}

func main() {
	flagInit()
	flag.Parse()
	if cmdLineOpts.Batch <= 0 || cmdLineOpts.Report <= 0 {
		utils.LogErro("invalid batch/report")
		return
	}
	if cmdLineOpts.Daemon {
		utils.LogInfo("running process as daemon")
		cntxt := &daemon.Context{
			PidFileName: fmt.Sprintf("/tmp/%s", uniqPidFile()),
			PidFilePerm: 0644,
		}
		d, err := cntxt.Reborn()
		if err != nil {
			utils.LogErro("failed to run as daemon: %v", err)
			return
		}
		if d != nil { // parent process
			return
		}
		defer cntxt.Release()
	}
	run()
}
