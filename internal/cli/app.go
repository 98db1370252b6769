// Package cli implements ghuser command line interface.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/m-zajac/ghuser/internal/app"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

//go:generate mockgen -destination mock/service.go -package mock github.com/m-zajac/ghuser/internal/cli Service

// Service provides user profiles.
type Service interface {
	UserByLogin(ctx context.Context, login string) (app.User, error)
}

// Printer writes command output.
type Printer interface {
	Lookup(login string) error
	User(login string, u app.User) error
	NotFound(login string) error
}

const usage = "usage: ghuser <username>"

// NewApp creates cli application that prints profile of the user given as the only argument.
// The app should be started with Run. Returned errors are not handled by the app, see ExitCode.
func NewApp(service Service, printer Printer, l logrus.FieldLogger) *cli.App {
	a := cli.NewApp()
	a.Name = "ghuser"
	a.Usage = "print public profile of a github user"
	a.ArgsUsage = "<username>"
	a.HideHelp = true
	a.HideVersion = true
	a.ExitErrHandler = func(*cli.Context, error) {}
	a.OnUsageError = func(*cli.Context, error, bool) error {
		return app.InvalidRequestError(usage)
	}
	a.Action = func(c *cli.Context) error {
		if c.NArg() != 1 || c.Args().First() == "" {
			return app.InvalidRequestError(usage)
		}

		return fetchAndPrint(context.Background(), c.Args().First(), service, printer, l)
	}

	return a
}

func fetchAndPrint(
	ctx context.Context,
	login string,
	service Service,
	printer Printer,
	l logrus.FieldLogger,
) error {
	l = l.WithField("login", login)

	if err := printer.Lookup(login); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	l.Debug("fetching user")
	user, err := service.UserByLogin(ctx, login)
	if err != nil {
		var nfErr app.UserNotFoundError
		if errors.As(err, &nfErr) {
			l.WithField("status", nfErr.StatusCode).Debug("user not found")
			if err := printer.NotFound(login); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
			return nil
		}
		return err
	}
	l.WithField("id", user.ID).Debug("user fetched")

	if err := printer.User(login, user); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

// Run runs the app with given process arguments.
// Arguments are counted before flag parsing, so "--" or "-x" count as usernames.
func Run(a *cli.App, args []string) error {
	if len(args) != 2 {
		return app.InvalidRequestError(usage)
	}

	return a.Run(args)
}

// ExitCode returns process exit status for error returned from the app.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case app.IsInvalidRequestError(err):
		return 2
	default:
		return 1
	}
}
