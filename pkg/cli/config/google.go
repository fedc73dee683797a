package config

import (
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"golang.org/x/oauth2"
)

// Google holds the caller's Google OAuth credential for the forms platform.
// Only a valid, non-expired access token is accepted; refresh handling
// belongs to whoever issued the token.
type Google struct {
	accessToken string
	tokenFile   string
}

// Flags returns CLI flags for Google credential configuration
func (g *Google) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "google-access-token",
			Usage:       "Google OAuth2 access token with the forms.body scope",
			Sources:     cli.EnvVars("FORMLOOM_GOOGLE_ACCESS_TOKEN"),
			Destination: &g.accessToken,
		},
		&cli.StringFlag{
			Name:        "google-token-file",
			Usage:       "Path to a file containing the Google OAuth2 access token",
			Sources:     cli.EnvVars("FORMLOOM_GOOGLE_TOKEN_FILE"),
			Destination: &g.tokenFile,
		},
	}
}

// Configure builds a static token source from the configured credential
func (g *Google) Configure() (oauth2.TokenSource, error) {
	token := g.accessToken
	if token == "" && g.tokenFile != "" {
		data, err := os.ReadFile(g.tokenFile)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read token file", goerr.V("path", g.tokenFile))
		}
		token = strings.TrimSpace(string(data))
	}

	if token == "" {
		return nil, goerr.New("google access token is required (--google-access-token or --google-token-file)")
	}

	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}), nil
}
