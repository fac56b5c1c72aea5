package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg(``)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "tagrender",
		Short: "Render HTML tags from the command line",
		Long: `Tagrender prints HTML markup for tags described by arguments, JSON attribute maps or YAML documents.

Examples:
  tagrender tag p 'Hello world!'
  tagrender tag input --void --attrs '{"type":"text","disabled":true}'
  tagrender scripts application https://example.com/x.js --attrs '{"defer":true}'
  tagrender file page.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.WarnLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
				Level(level).With().Timestamp().Logger()
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug information to stderr")

	cmd.AddCommand(
		tagCmd(),
		scriptsCmd(),
		fileCmd(),
	)
	return cmd
}
