package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ekuinox/find-track-by-color/internal/catalog"
	"github.com/ekuinox/find-track-by-color/internal/colour"
	"github.com/ekuinox/find-track-by-color/internal/finder"
	imageutil "github.com/ekuinox/find-track-by-color/internal/image"
	"github.com/ekuinox/find-track-by-color/internal/progress"
	"github.com/ekuinox/find-track-by-color/internal/scanner"
)

var (
	// Find command flags
	findDirectory   string
	findThreshold   float64
	findLimit       int
	findMinCoverage float64
	findClusters    int
	findMaxIter     int
	findRuns        int
	findSeed        int64
	findConvergence float64
)

// findCmd represents the find command
var findCmd = &cobra.Command{
	Use:   "find <colour>",
	Short: "Find tracks whose album art is closest to a colour",
	Long: `Find scans the prepared artwork directory, reduces each image to its
dominant colours with k-means clustering in the Lab colour space, and
reports the tracks whose artwork lies within the distance threshold of
the target colour, closest first.

Examples:
  # Find tracks with red album art
  find-track-by-color find "#ff0000"

  # Tighten the threshold and scan more files
  find-track-by-color find -t 0.2 -l 500 "rgb(20, 120, 200)"

  # Reproducible clustering across the best of five seeded runs
  find-track-by-color find --runs 5 --seed 42 "#1db954"`,
	Args: cobra.ExactArgs(1),
	RunE: runFind,
}

func init() {
	findCmd.Flags().StringVarP(&findDirectory, "directory", "d", "./images", "directory holding prepared artwork")
	findCmd.Flags().Float64VarP(&findThreshold, "threshold", "t", 0.5, "maximum colour distance for a match (0-1)")
	findCmd.Flags().IntVarP(&findLimit, "limit", "l", 100, "maximum number of files to process")
	findCmd.Flags().Float64Var(&findMinCoverage, "min-coverage", 0.1, "ignore colours covering less of an image than this fraction")
	findCmd.Flags().IntVar(&findClusters, "clusters", 8, "number of k-means clusters")
	findCmd.Flags().IntVar(&findMaxIter, "max-iter", 20, "maximum k-means iterations per run")
	findCmd.Flags().IntVar(&findRuns, "runs", 1, "number of seeded k-means runs to score")
	findCmd.Flags().Int64Var(&findSeed, "seed", 0, "base seed for k-means runs")
	findCmd.Flags().Float64Var(&findConvergence, "convergence", 0.0025, "centroid movement below which a run stops early")
}

// runFind executes the find command.
func runFind(cmd *cobra.Command, args []string) error {
	target, err := colour.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid target colour: %w", err)
	}

	if err := imageutil.ValidateDirectory(findDirectory); err != nil {
		return err
	}

	extractor, err := imageutil.NewExtractor(colour.Config{
		Clusters:      findClusters,
		MaxIterations: findMaxIter,
		Runs:          findRuns,
		Convergence:   findConvergence,
		Seed:          findSeed,
	})
	if err != nil {
		return err
	}

	logger := newLogger()
	ctx := cmd.Context()

	client, err := catalog.NewClient(ctx, logger)
	if err != nil {
		return fmt.Errorf("failed to create catalog client: %w", err)
	}

	find, err := finder.New(target, findThreshold, findMinCoverage, client, logger)
	if err != nil {
		return err
	}

	counter := &progress.Counter{}
	stop := startProgress("scanned", counter)
	candidates, err := scanner.New(extractor, logger).Scan(findDirectory, findLimit, counter)
	stop()
	if err != nil {
		return err
	}
	logger.Debug("scan complete", "candidates", len(candidates))

	matches := find.Run(ctx, candidates)
	printMatches(os.Stdout, matches, term.IsTerminal(int(os.Stdout.Fd())))
	return nil
}

// printMatches writes one line per match, closest colour first. With
// showSwatch set each line is prefixed with a swatch of the matched
// colour.
func printMatches(w io.Writer, matches []finder.Match, showSwatch bool) {
	for _, m := range matches {
		name := ""
		if m.Track != nil {
			name = m.Track.Name
		}
		if showSwatch {
			swatch := color.RGB(int(m.Color.R), int(m.Color.G), int(m.Color.B))
			fmt.Fprint(w, swatch.Sprint("██ "))
		}
		fmt.Fprintf(w, "%s ... %s, %s, %.4f, %.2f\n", name, m.TrackID, m.Path, m.Distance, m.Coverage)
	}
}
