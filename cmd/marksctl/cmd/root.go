package cmd

import (
	"errors"
	"os"

	"github.com/nfrund/marksweb/internal/apiclient"
	"github.com/nfrund/marksweb/internal/credentials"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// EnvAPIURL overrides the default grading service address.
const EnvAPIURL = "MARKS_API_URL"

// errFailed marks a failure whose message was already printed.
var errFailed = errors.New("command failed")

type cliApp struct {
	fs       afero.Fs
	apiURL   string
	credPath string
	store    *credentials.FileStore
}

// client builds an API client that reads its token from the credentials file.
func (a *cliApp) client() (*apiclient.Client, error) {
	return apiclient.New(a.apiURL, apiclient.WithTokenSource(a.store))
}

func defaultAPIURL() string {
	if v := os.Getenv(EnvAPIURL); v != "" {
		return v
	}
	return apiclient.DefaultBaseURL
}

// NewRootCmd assembles the marksctl command tree over fs.
func NewRootCmd(fs afero.Fs) *cobra.Command {
	a := &cliApp{fs: fs}

	root := &cobra.Command{
		Use:   "marksctl",
		Short: "Command-line client for the grading service",
		Long: `marksctl talks to the same grading API as the marks web app.

Available commands:
  login      Sign in and store the session token
  register   Create a new account
  marks      Submit marks and print the average and grade
  report     Print the student report or export it to Excel

Use "marksctl [command] --help" for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.credPath == "" {
				p, err := credentials.DefaultPath()
				if err != nil {
					return err
				}
				a.credPath = p
			}
			a.store = credentials.NewFileStore(a.fs, a.credPath)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.apiURL, "api", defaultAPIURL(), "grading service base URL (env "+EnvAPIURL+")")
	root.PersistentFlags().StringVar(&a.credPath, "credentials", "", "credentials file (default ~/.marksctl/credentials.json)")

	root.AddCommand(
		newLoginCmd(a),
		newRegisterCmd(a),
		newMarksCmd(a),
		newReportCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs marksctl against the real filesystem.
func Execute() {
	if err := NewRootCmd(afero.NewOsFs()).Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			printError(os.Stderr, "Error: "+err.Error())
		}
		os.Exit(1)
	}
}
