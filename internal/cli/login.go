package cli

import (
	"github.com/spf13/cobra"

	"github.com/ekuinox/find-track-by-color/internal/catalog"
)

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authorize against Spotify and cache the token",
	Long: `Login runs the authorization-code flow with PKCE using the SPOTIFY_ID,
SPOTIFY_SECRET and SPOTIFY_REDIRECT_URI environment variables and
caches the resulting token for later prepare and find runs.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return catalog.Login(cmd.Context(), newLogger())
	},
}
