package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ekuinox/find-track-by-color/internal/catalog"
	"github.com/ekuinox/find-track-by-color/internal/progress"
)

var (
	// Prepare command flags
	prepareDirectory string
)

// prepareCmd represents the prepare command
var prepareCmd = &cobra.Command{
	Use:   "prepare",
	Short: "Download album artwork for your saved tracks",
	Long: `Prepare downloads the album artwork of every track in your library
into the artwork directory, one file per track named after its track
ID. The find command scans this directory.`,
	Args: cobra.NoArgs,
	RunE: runPrepare,
}

func init() {
	prepareCmd.Flags().StringVarP(&prepareDirectory, "directory", "d", "./images", "directory to save artwork into")
}

// runPrepare executes the prepare command.
func runPrepare(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	ctx := cmd.Context()

	client, err := catalog.NewClient(ctx, logger)
	if err != nil {
		return fmt.Errorf("failed to create catalog client: %w", err)
	}

	counter := &progress.Counter{}
	stop := startProgress("downloaded", counter)
	err = client.DownloadArtwork(ctx, prepareDirectory, counter)
	stop()
	return err
}
