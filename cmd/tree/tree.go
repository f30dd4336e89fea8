package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/willbeason/fractal-trees/internal/logging"
	"github.com/willbeason/fractal-trees/internal/prompt"
	"github.com/willbeason/fractal-trees/pkg/canvas"
	"github.com/willbeason/fractal-trees/pkg/params"
	"github.com/willbeason/fractal-trees/pkg/tree"
	"github.com/willbeason/fractal-trees/pkg/turtle"
	"github.com/willbeason/fractal-trees/pkg/window"
)

const (
	randomFlag  = "random"
	loadFlag    = "load"
	saveFlag    = "save"
	dirFlag     = "dir"
	seedFlag    = "seed"
	animateFlag = "animate"
	outputFlag  = "output"
	widthFlag   = "width"
	heightFlag  = "height"
	dialogFlag  = "dialog"
	verboseFlag = "verbose"
)

type options struct {
	random  bool
	load    string
	save    string
	dir     string
	seed    int64
	animate bool
	output  string
	width   int
	height  int
	dialog  bool
	verbose bool

	// confirm overrides how overwriting a saved tree is confirmed.
	confirm prompt.Confirmer
}

func mainCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Grow a fractal tree, one generation of branches at a time",
		Long: `Grow a fractal tree, one generation of branches at a time.

With no flags the default tree is drawn. Trees can be randomized, saved by name,
and loaded back. Press Escape to close the window.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.random, randomFlag, "r", false, "randomize the tree's shape")
	flags.StringVarP(&opts.load, loadFlag, "l", "", "load the tree saved as `name`")
	flags.StringVarP(&opts.save, saveFlag, "s", "", "save the tree as `name` and exit without drawing")
	flags.StringVar(&opts.dir, dirFlag, params.DefaultDir, "directory trees are saved in")
	flags.Int64Var(&opts.seed, seedFlag, 0, "seed for --random (default: time-based)")
	flags.BoolVar(&opts.animate, animateFlag, true, "draw generation by generation instead of all at once")
	flags.StringVarP(&opts.output, outputFlag, "o", "", "write the tree to an image `file` (png, jpg, tiff, svg, pdf, eps) instead of opening a window")
	flags.IntVar(&opts.width, widthFlag, 800, "canvas width")
	flags.IntVar(&opts.height, heightFlag, 800, "canvas height")
	flags.BoolVar(&opts.dialog, dialogFlag, false, "confirm overwriting a saved tree with a dialog instead of on the terminal")
	flags.BoolVarP(&opts.verbose, verboseFlag, "v", false, "log every generation")

	cmd.MarkFlagsMutuallyExclusive(randomFlag, loadFlag)
	cmd.MarkFlagsMutuallyExclusive(saveFlag, outputFlag)

	return cmd
}

func runCmd(cmd *cobra.Command, opts *options) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	writers := logging.LogWriters{Ops: cmd.ErrOrStderr()}
	if opts.verbose {
		writers.Diag = cmd.ErrOrStderr()
	}
	logging.SetLogWriters(writers)

	if opts.width <= 0 || opts.height <= 0 {
		return fmt.Errorf("canvas must have a positive size, got %dx%d", opts.width, opts.height)
	}

	store := params.NewStore(opts.dir)

	p, err := buildParams(cmd, opts, store)
	if err != nil {
		return err
	}
	p.Animate = opts.animate

	switch {
	case opts.save != "":
		return saveParams(cmd, opts, store, p)
	case opts.output != "":
		return export(cmd, opts, p)
	default:
		return show(opts, p)
	}
}

func buildParams(cmd *cobra.Command, opts *options, store *params.Store) (params.Params, error) {
	switch {
	case opts.load != "":
		p, err := store.Load(opts.load)
		if err != nil {
			return params.Params{}, err
		}
		cmd.Println("Successfully loaded the tree parameters!")
		return p, nil

	case opts.random:
		seed := opts.seed
		if !cmd.Flags().Changed(seedFlag) {
			seed = time.Now().UnixNano()
		}
		logging.Opsf("random seed %d", seed)
		return params.Random(rand.New(rand.NewSource(seed))), nil

	default:
		return params.Defaults(), nil
	}
}

func saveParams(cmd *cobra.Command, opts *options, store *params.Store, p params.Params) error {
	exists, err := store.Exists(opts.save)
	if err != nil {
		return &params.SaveError{Name: opts.save, Err: err}
	}

	if exists {
		confirm := opts.confirm
		if confirm == nil {
			confirm = prompt.Terminal{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
			if opts.dialog {
				confirm = prompt.Dialog{Title: window.DefaultConfig().Title}
			}
		}

		question := fmt.Sprintf("The file at the given path (%q) already exists, do you want to replace the existing file?",
			store.Path(opts.save))
		replace, err := confirm.Confirm(question)
		if err != nil {
			return err
		}
		if !replace {
			cmd.Println("Kept the existing tree parameters.")
			return nil
		}
	}

	if err := store.Save(opts.save, p); err != nil {
		return err
	}

	logging.Opsf("wrote %s", store.Path(opts.save))
	cmd.Println("Successfully saved the current tree parameters!")
	return nil
}

func export(cmd *cobra.Command, opts *options, p params.Params) error {
	c, err := canvas.New(canvas.Config{Width: float64(opts.width), Height: float64(opts.height)},
		canvas.FormatOf(opts.output))
	if err != nil {
		return err
	}

	t := turtle.New(c, turtle.BottomCenter(float64(opts.height)))
	stats := tree.NewEngine(p, tree.WithPace(0), tree.WithLogf(logging.Diagf)).Run(t)

	if err := c.Save(opts.output); err != nil {
		return err
	}

	logging.Opsf("wrote %s", opts.output)
	cmd.Printf("Drew %d segments over %d generations.\n", stats.Segments, stats.Generations)
	return nil
}

func show(opts *options, p params.Params) error {
	cfg := window.DefaultConfig()
	cfg.Width = opts.width
	cfg.Height = opts.height
	if !p.Animate {
		cfg.Fade = 0
	}

	w := window.New(cfg)
	t := turtle.New(w, turtle.BottomCenter(float64(opts.height)))
	engine := tree.NewEngine(p, tree.WithLogf(logging.Diagf))

	// The window owns the main goroutine; the tree grows beside it.
	go func() {
		stats := engine.Run(t)
		logging.Diagf("drew %d segments over %d generations", stats.Segments, stats.Generations)
	}()

	return w.Run()
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
