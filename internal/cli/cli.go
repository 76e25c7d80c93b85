package cli

import (
	"context"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/forester-bio/forester/pkg/buildinfo"
	"github.com/forester-bio/forester/pkg/cache"
)

// appName is the application name used for directories and display.
const appName = "forester"

// Execute runs the forester CLI and returns an error if any command fails.
//
// The root command wires up all subcommands, configures logging based on the
// --verbose flag, and attaches the logger to the command context where
// loggerFromContext retrieves it.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Forester runs prize-collecting Steiner forest analyses on interaction networks",
		Long: `Forester is a convenience layer around an external prize-collecting Steiner
forest solver. It builds solver inputs from prize and adjacency tables, runs
the solver, annotates the resulting forest with centrality and community
metrics, and compares, summarizes and renders saved solutions.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newPathcostCmd())
	root.AddCommand(newTranslateCmd())
	root.AddCommand(newCompareCmd())
	root.AddCommand(newSummaryCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newCacheCmd())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return root.ExecuteContext(ctx)
}

// newSolutionCache opens the file-backed solution cache, or a null cache
// when refresh is set or no cache directory is available.
func newSolutionCache(refresh bool) cache.Cache {
	if refresh {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	c, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return c
}

// cacheDir returns the cache directory using XDG standard (~/.cache/forester/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// nopCloser wraps an io.Writer with a no-op Close method so os.Stdout can
// stand in for a file.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path, or stdout if path is
// empty.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
