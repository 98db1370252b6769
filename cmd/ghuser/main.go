// Package main implements ghuser, a command that prints public profile of a github user.
package main

import (
	netHttp "net/http"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/m-zajac/ghuser/internal/adapter/github"
	"github.com/m-zajac/ghuser/internal/app"
	"github.com/m-zajac/ghuser/internal/cli"
	"github.com/m-zajac/ghuser/internal/render"
	"github.com/sirupsen/logrus"
)

func main() {
	l := logrus.New()
	l.Out = os.Stderr
	l.Level = logrus.InfoLevel

	var conf Config
	if err := envconfig.Process("ghuser", &conf); err != nil {
		l.Fatalf("couldn't parse config: %v", err)
	}
	if err := conf.Validate(); err != nil {
		l.Fatalf("invalid config: %v", err)
	}
	level, err := logrus.ParseLevel(conf.LogLevel)
	if err != nil {
		l.Fatalf("invalid log level: %v", err)
	}
	l.Level = level

	httpClient := &netHttp.Client{
		Timeout: conf.Timeout,
	}
	githubClient := github.NewClient(
		httpClient,
		conf.APIAddress,
		conf.UserAgent,
	)

	service := app.NewService(
		githubClient,
		conf.Timeout,
	)

	a := cli.NewApp(
		service,
		render.NewPrinter(os.Stdout),
		l.WithField("component", "cli"),
	)
	if err := cli.Run(a, os.Args); err != nil {
		l.WithError(err).Error("ghuser failed")
		os.Exit(cli.ExitCode(err))
	}
}
