package main

import (
	"errors"
	"time"

	"github.com/sbilibin2017/roommate-finder/internal/facades"
	"github.com/sbilibin2017/roommate-finder/internal/logger"
	"github.com/sbilibin2017/roommate-finder/internal/models"
	"github.com/sbilibin2017/roommate-finder/internal/session"
	"github.com/spf13/cobra"
)

const defaultAPI = "http://localhost:8080"

var errNotSignedIn = errors.New("not signed in, run roomctl login first")

// app is the state shared by every command: the API facade and the
// session loaded once before the command runs.
type app struct {
	apiURL      string
	sessionPath string
	timeout     time.Duration

	api     *facades.RoomsAPIFacade
	session *session.Store
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "roomctl",
		Short:         "Browse rooms and roommates",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.init()
		},
	}

	sessionPath, err := session.DefaultPath()
	if err != nil {
		sessionPath = ".roomctl-session.json"
	}

	cmd.PersistentFlags().StringVar(&a.apiURL, "api", getEnv("ROOMCTL_API", defaultAPI), "API base URL")
	cmd.PersistentFlags().StringVar(&a.sessionPath, "session", sessionPath, "Session file")
	cmd.PersistentFlags().DurationVar(&a.timeout, "timeout", facades.DefaultTimeout, "Request timeout")

	cmd.AddCommand(
		newRoomsCmd(a),
		newRoommatesCmd(a),
		newRegisterCmd(a),
		newLoginCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newProfileCmd(a),
	)

	return cmd
}

func (a *app) init() {
	a.api = facades.NewRoomsAPIFacade(a.apiURL, a.timeout)
	a.session = session.NewStore(a.sessionPath)
	if err := a.session.Load(); err != nil {
		logger.Log.Warnw("Ignoring unreadable session", "path", a.sessionPath, "error", err)
	}
}

func (a *app) currentUser() (*models.UserSummary, error) {
	user, ok := a.session.Current()
	if !ok {
		return nil, errNotSignedIn
	}
	return user, nil
}
