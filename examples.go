package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dags-/jenkbadge/err"
)

var examplesOutput string

var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "Print the documentation examples of every badge route",
	RunE: func(cmd *cobra.Command, args []string) error {
		listings := newRegistry(&Config{}).Examples()
		switch examplesOutput {
		case "json":
			if e := err.EncodePretty(os.Stdout, listings); e.Present() {
				return e
			}
			return nil
		case "yaml":
			en := yaml.NewEncoder(os.Stdout)
			en.SetIndent(2)
			if e := en.Encode(listings); e != nil {
				return errors.Wrap(e, "encode examples")
			}
			return en.Close()
		default:
			return errors.Errorf("unknown output %q, use yaml or json", examplesOutput)
		}
	},
}

func init() {
	examplesCmd.Flags().StringVarP(&examplesOutput, "output", "o", "yaml", "output format: yaml or json")
	rootCmd.AddCommand(examplesCmd)
}
