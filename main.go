package main

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/johnstarich/spendee-sankey/category"
	"github.com/johnstarich/spendee-sankey/config"
	"github.com/johnstarich/spendee-sankey/flow"
	"github.com/johnstarich/spendee-sankey/pipe"
	"github.com/johnstarich/spendee-sankey/transaction"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "dev"

const defaultInput = "test.csv"

type usageError struct {
	error
}

type runOptions struct {
	configFile          string
	delimiter           string
	skipZero            bool
	allowMissingSavings bool
}

func newLogger() (*zap.Logger, error) {
	if os.Getenv("DEVELOPMENT") == "true" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newRootCmd(logger *zap.Logger, out io.Writer) *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "spendee-sankey [file]",
		Short: "Print SankeyMATIC flows for a Spendee transaction export",
		Long: `spendee-sankey reads a Spendee CSV export and prints one "source [amount] destination"
line per flow: income into savings and expenses, expenses into groups, groups into categories.
Paste the output into http://sankeymatic.com/build/ to render it.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return usageError{err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if utf8.RuneCountInString(opts.delimiter) != 1 {
				return usageError{errors.Errorf("Delimiter must be a single character: %q", opts.delimiter)}
			}
			input := defaultInput
			if len(args) > 0 {
				input = args[0]
			}
			return run(logger, opts, input, out)
		},
	}
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})
	cmd.SetOut(out)

	flags := cmd.Flags()
	flags.StringVar(&opts.configFile, "config", "", "Path to a category groups config file (toml, yaml, or json). Uses built-in groups if empty")
	flags.StringVar(&opts.delimiter, "delimiter", ",", "Field separator of the input file")
	flags.BoolVar(&opts.skipZero, "skip-zero", false, "Omit flows with a zero amount")
	flags.BoolVar(&opts.allowMissingSavings, "allow-missing-savings", false, "Treat a missing savings category as zero instead of failing")
	return cmd
}

// run loads everything before writing any flows, so a failure never produces partial output
func run(logger *zap.Logger, opts runOptions, input string, out io.Writer) error {
	var (
		cfg         *config.Config
		categorizer *category.Categorizer
		txns        transaction.Transactions
		edges       flow.Edges
	)
	delimiter, _ := utf8.DecodeRuneInString(opts.delimiter)

	return pipe.Stages{
		pipe.NewStage("load config", func() (err error) {
			cfg, err = config.Load(opts.configFile)
			if err != nil {
				return err
			}
			categorizer, err = cfg.Categorizer()
			if err != nil {
				return err
			}
			logger.Info("Loaded category groups",
				zap.Int("groups", len(categorizer.Groups())),
				zap.String("default_group", categorizer.DefaultGroup()))
			return nil
		}),
		pipe.NewStage("load transactions", func() error {
			file, err := os.Open(input)
			if err != nil {
				return errors.Wrapf(err, "Error opening '%s'", input)
			}
			defer file.Close()
			txns, err = transaction.NewFromReader(file, transaction.Delimiter(delimiter))
			if err != nil {
				return errors.Wrapf(err, "Error reading transactions from '%s'", input)
			}
			logger.Info("Loaded transactions", zap.String("file", input), zap.Int("count", len(txns)))
			return nil
		}),
		pipe.NewStage("build flows", func() (err error) {
			emitter := flow.New(categorizer, flow.Options{
				SavingsCategory:     cfg.SavingsCategory,
				AllowMissingSavings: opts.allowMissingSavings,
				SkipZero:            opts.skipZero,
				IncomeRenames:       cfg.RenameMap(),
				IncomeNode:          cfg.Nodes.Income,
				SavingsNode:         cfg.Nodes.Savings,
				ExpensesNode:        cfg.Nodes.Expenses,
			})
			edges, err = emitter.Flows(txns)
			return err
		}),
		pipe.NewStage("write flows", func() error {
			_, err := edges.WriteTo(out)
			logger.Info("Wrote flows", zap.Int("edges", len(edges)))
			return err
		}),
	}.Run(logger)
}

func exitCode(err error) int {
	switch err.(type) {
	case nil:
		return 0
	case usageError:
		return 2
	default:
		return 1
	}
}

func main() {
	logger, err := newLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	err = newRootCmd(logger, os.Stdout).Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	_ = logger.Sync()
	os.Exit(exitCode(err))
}
