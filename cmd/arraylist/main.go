package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.llib.dev/arraylist/internal/config"
	"go.llib.dev/arraylist/internal/replay"
	"go.llib.dev/frameless/pkg/logging"
)

func main() {
	ctx := context.Background()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

type app struct {
	configFile string
	count      int
	capacity   int
}

func newRootCmd() *cobra.Command {
	var a app

	rootCmd := &cobra.Command{
		Use:          "arraylist",
		Short:        "replay list operations and inspect capacity growth",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", "config file path (yaml)")

	runCmd := &cobra.Command{
		Use:   "run [script]",
		Short: "replay a yaml script of list operations",
		Args:  cobra.ExactArgs(1),
		RunE:  a.run,
	}

	growthCmd := &cobra.Command{
		Use:   "growth",
		Short: "plot the capacity of a list while appending",
		RunE:  a.growth,
	}
	growthCmd.Flags().IntVar(&a.count, "count", 100, "number of appends")
	growthCmd.Flags().IntVar(&a.capacity, "capacity", -1, "initial capacity, negative means lazy default")

	rootCmd.AddCommand(runCmd, growthCmd)
	return rootCmd
}

func (a *app) loadConfig() (config.Config, error) {
	if a.configFile == "" {
		return config.Load()
	}
	return config.LoadFile(a.configFile)
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	c, err := a.loadConfig()
	if err != nil {
		return err
	}
	logger := c.Logger()
	logger.Out = cmd.ErrOrStderr()

	script, err := replay.ParseFile(args[0])
	if err != nil {
		logger.Error(ctx, "failed to read script", logging.Field("path", args[0]), logging.ErrField(err))
		return err
	}

	results, err := replay.Runner{
		Logger:          logger,
		InitialCapacity: c.InitialCapacity,
	}.Run(ctx, script)
	printResults(cmd.OutOrStdout(), results)
	return err
}

func printResults(out io.Writer, results []replay.Result) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tOP\tOUTPUT\tERROR\tLEN\tCAP")
	for i, r := range results {
		var errMsg string
		if r.Err != nil {
			errMsg = errMessage(r.Err)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%d\n", i, r.Op, r.Output, errMsg, r.Len, r.Cap)
	}
	_ = w.Flush()
}

// errMessage is the first line of the error, without the attached stack trace.
func errMessage(err error) string {
	msg, _, _ := strings.Cut(err.Error(), "\n")
	return msg
}

func (a *app) growth(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	c, err := a.loadConfig()
	if err != nil {
		return err
	}
	logger := c.Logger()
	logger.Out = cmd.ErrOrStderr()

	capacity := a.capacity
	if !cmd.Flags().Changed("capacity") {
		capacity = c.InitialCapacity
	}
	if a.count <= 0 {
		return fmt.Errorf("count must be positive, got %d", a.count)
	}

	caps, err := replay.Growth(capacity, a.count)
	if err != nil {
		return err
	}
	logger.Debug(ctx, "capacity growth measured",
		logging.Field("count", a.count),
		logging.Field("capacity", capacity),
		logging.Field("final_capacity", caps[len(caps)-1]))

	data := make([]float64, len(caps))
	for i, v := range caps {
		data[i] = float64(v)
	}
	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("capacity after "+strconv.Itoa(a.count)+" appends"))
	fmt.Fprintln(cmd.OutOrStdout(), graph)
	return nil
}
