package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/convkit"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/singly/pkg/chainbench"
	"go.llib.dev/testcase/clock"
)

func main() {
	logger := &logging.Logger{Out: os.Stderr}
	cli.Main(context.Background(), NewMux(afero.NewOsFs(), logger))
}

func NewMux(fs afero.Fs, logger *logging.Logger) *cli.Mux {
	var m cli.Mux
	m.Handle("run", RunCommand{fs: fs, logger: logger})
	m.Handle("history", HistoryCommand{})
	m.Handle("render", RenderCommand{})
	return &m
}

var listOption = convkit.Options{Separator: ","}

type RunCommand struct {
	Config     string `flag:"config,c" env:"CHAINBENCH_CONFIG" desc:"path to a JSON config, comments allowed"`
	Sizes      string `flag:"sizes" env:"CHAINBENCH_SIZES" desc:"comma separated list sizes, overrides the config"`
	Variants   string `flag:"variants" env:"CHAINBENCH_VARIANTS" desc:"comma separated list of box, rc and arena"`
	Workloads  string `flag:"workloads" env:"CHAINBENCH_WORKLOADS" desc:"comma separated workload names"`
	Rounds     int    `flag:"rounds" env:"CHAINBENCH_ROUNDS" desc:"repetitions of every case"`
	Parallel   int    `flag:"parallel,p" env:"CHAINBENCH_PARALLEL" desc:"number of cases measured at the same time"`
	History    string `flag:"history" env:"CHAINBENCH_HISTORY" desc:"bolt file where the run is recorded"`
	MetricsOut string `flag:"metrics-out" env:"CHAINBENCH_METRICS_OUT" desc:"file to write the prometheus metrics into"`

	fs     afero.Fs
	logger *logging.Logger
}

func (cmd RunCommand) Summary() string { return "measure the list variants" }

func (cmd RunCommand) ServeCLI(w cli.Response, r *cli.Request) {
	ctx := r.Context()

	config, err := chainbench.LoadConfig(cmd.fs, cmd.Config)
	if err == nil {
		config, err = cmd.override(config)
	}
	if err == nil {
		err = config.Validate()
	}
	if err != nil {
		w.ExitCode(cli.ExitCodeBadRequest)
		fmt.Fprintln(w, err.Error())
		return
	}

	var (
		metrics = chainbench.NewMetrics()
		runner  = chainbench.Runner{Logger: cmd.logger, Recorders: []chainbench.Recorder{metrics}}
		started = clock.Now()
	)
	results, err := runner.Run(ctx, config)
	if err != nil {
		cli.HandleError(w, r, err)
		return
	}
	if err := chainbench.WriteTable(w, results); err != nil {
		cli.HandleError(w, r, err)
		return
	}
	if cmd.History != "" {
		run := chainbench.Run{StartedAt: started, Config: config, Results: results}
		if err := cmd.save(&run); err != nil {
			cli.HandleError(w, r, err)
			return
		}
		fmt.Fprintf(w, "run %s saved to %s\n", run.ID, cmd.History)
	}
	if cmd.MetricsOut != "" {
		var buf bytes.Buffer
		if err := metrics.WriteText(&buf); err != nil {
			cli.HandleError(w, r, err)
			return
		}
		if err := afero.WriteFile(cmd.fs, cmd.MetricsOut, buf.Bytes(), 0644); err != nil {
			cli.HandleError(w, r, err)
			return
		}
	}
}

func (cmd RunCommand) override(c chainbench.Config) (chainbench.Config, error) {
	if cmd.Sizes != "" {
		sizes, err := convkit.Parse[[]int](cmd.Sizes, listOption)
		if err != nil {
			return c, chainbench.ErrInvalidConfig.Wrap(err)
		}
		c.Sizes = sizes
	}
	if cmd.Variants != "" {
		variants, err := convkit.Parse[[]chainbench.Variant](cmd.Variants, listOption)
		if err != nil {
			return c, chainbench.ErrInvalidConfig.Wrap(err)
		}
		c.Variants = variants
	}
	if cmd.Workloads != "" {
		workloads, err := convkit.Parse[[]chainbench.Workload](cmd.Workloads, listOption)
		if err != nil {
			return c, chainbench.ErrInvalidConfig.Wrap(err)
		}
		c.Workloads = workloads
	}
	if cmd.Rounds != 0 {
		c.Rounds = cmd.Rounds
	}
	if cmd.Parallel != 0 {
		c.Parallelism = cmd.Parallel
	}
	return c, nil
}

func (cmd RunCommand) save(run *chainbench.Run) (rErr error) {
	history, err := chainbench.OpenHistory(cmd.History)
	if err != nil {
		return err
	}
	defer errorkit.Finish(&rErr, history.Close)
	return history.Save(run)
}

type HistoryCommand struct {
	Path string `flag:"history" env:"CHAINBENCH_HISTORY" required:"true" desc:"bolt file of the recorded runs"`
	ID   string `flag:"id" desc:"show the results of a single run"`
}

func (cmd HistoryCommand) Summary() string { return "list the recorded runs" }

func (cmd HistoryCommand) ServeCLI(w cli.Response, r *cli.Request) {
	if err := cmd.serve(w); err != nil {
		cli.HandleError(w, r, err)
	}
}

func (cmd HistoryCommand) serve(w cli.Response) (rErr error) {
	history, err := chainbench.OpenHistory(cmd.Path)
	if err != nil {
		return err
	}
	defer errorkit.Finish(&rErr, history.Close)

	if cmd.ID != "" {
		run, err := history.Lookup(cmd.ID)
		if err != nil {
			return err
		}
		return chainbench.WriteTable(w, run.Results)
	}

	runs, err := history.List()
	if err != nil {
		return err
	}
	return chainbench.WriteHistory(w, runs)
}

// RenderCommand prints the display string each variant makes from the arguments.
type RenderCommand struct {
	Head bool `flag:"head" desc:"push the values to the head instead of the back"`
}

func (cmd RenderCommand) Summary() string { return "render the given values with every list variant" }

func (cmd RenderCommand) ServeCLI(w cli.Response, r *cli.Request) {
	var rendered []string
	for _, v := range chainbench.Variants() {
		list, err := chainbench.NewList[string](v)
		if err != nil {
			cli.HandleError(w, r, err)
			return
		}
		for _, arg := range r.Args {
			if cmd.Head {
				list.PushHead(arg)
			} else {
				list.PushBack(arg)
			}
		}
		rendered = append(rendered, list.String())
		fmt.Fprintf(w, "%s\t%s\n", v, list)
	}
	for _, out := range rendered[1:] {
		if out != rendered[0] {
			cli.HandleError(w, r, ErrVariantsDisagree.F("%s", strings.Join(rendered, " != ")))
			return
		}
	}
}

const ErrVariantsDisagree errorkit.Error = "list variants rendered different output"
