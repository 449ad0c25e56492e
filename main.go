package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dags-/jenkbadge/jenkins"
	"github.com/dags-/jenkbadge/service"
)

var rootCmd = &cobra.Command{
	Use:           "jenkbadge",
	Short:         "Serves Jenkins test result badges",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if e := rootCmd.Execute(); e != nil {
		log.Fatal().Err(e).Msg("jenkbadge failed")
	}
}

func newRegistry(c *Config) *service.Registry {
	j := jenkins.NewClient(&jenkins.Config{
		User:    c.JenkinsUser,
		Pass:    c.JenkinsPass,
		Timeout: c.HTTP.Timeout,
	})

	r := service.NewRegistry()
	r.Register(jenkins.NewTests(j))
	return r
}
