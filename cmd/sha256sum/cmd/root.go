package cmd

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var errFailed = errors.New("one or more inputs failed")

type options struct {
	unroll  string
	double  bool
	verbose bool
}

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.Out = os.Stderr
	log.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	log.Level = logrus.InfoLevel
	return log
}

func newRootCmd(log *logrus.Logger) *cobra.Command {
	opts := new(options)

	root := &cobra.Command{
		Use:   filepath.Base(os.Args[0]) + " [files...]",
		Short: "Print SHA-256 checksums.",
		Long: "Print SHA-256 checksums of the named files, or of stdin when no file\n" +
			"(or '-') is given. The compression unroll factor only affects speed.\n",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSum(cmd, log, opts, args)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.unroll, "unroll", "u", "auto", "compression unroll factor: auto, 1, 2, 4 or 8")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	root.Flags().BoolVarP(&opts.double, "double", "d", false, "print SHA-256(SHA-256(input))")

	root.AddCommand(newBenchCmd(log))
	return root
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	log := newLogger()
	if err := newRootCmd(log).Execute(); err != nil {
		if err != errFailed {
			log.WithError(err).Error("command failed")
		}
		os.Exit(1)
	}
}
