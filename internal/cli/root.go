package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/elevont/prttl/format"
)

var (
	version string
	commit  string
	date    string
)

// ErrCheckFailed is returned when --check found files that are not
// formatted. The main package maps it to exit code 65.
var ErrCheckFailed = errors.New("one or more files are not formatted")

// SetVersion sets the version information displayed by --version,
// typically injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

type rootFlags struct {
	verbose                bool
	check                  bool
	indentation            int
	singleEntryOnNewLine   bool
	force                  bool
	noSortingIDs           bool
	sparqlSyntax           bool
	labelAllBlankNodes     bool
	canonicalize           bool
	warnUnsupportedNumbers bool
	predicateOrder         []string
	subjectTypeOrder       []string
}

// Execute runs the prttl CLI and returns an error if formatting or
// checking fails.
func Execute() error {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "prttl [flags] <file-or-dir>...",
		Short: "prttl applies a canonical formatting to Turtle files",
		Long: `prttl parses RDF/Turtle files and rewrites them with a deterministic
layout: subjects, predicates and objects are sorted, blank nodes are
nested where safe and rdf:first/rdf:rest chains are folded back into
collection syntax. Directories are searched recursively for .ttl files.
Pass "-" to read from standard input and write to standard output.`,
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.MinimumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if flags.verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveOptions(cmd, flags)
			if err != nil {
				return err
			}
			return run(cmd.Context(), args, opts)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("prttl %s\ncommit: %s\nbuilt: %s\n", version, commit, date))

	pf := root.PersistentFlags()
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose logging")

	f := root.Flags()
	f.BoolVar(&flags.check, "check", false,
		"do not rewrite files, only report the ones that are not formatted")
	f.IntVar(&flags.indentation, "indentation", 2,
		"number of spaces per level of indentation")
	f.BoolVar(&flags.singleEntryOnNewLine, "single-entry-on-new-line", false,
		"put lone objects on their own line instead of the predicate's line")
	f.BoolVar(&flags.force, "force", false,
		"rewrite files even when comments would be dropped")
	f.BoolVar(&flags.noSortingIDs, "no-sorting-ids", false,
		"ignore prtyr:sortingId annotations when ordering blank nodes")
	f.BoolVar(&flags.sparqlSyntax, "sparql-syntax", false,
		"emit BASE/PREFIX directives instead of @base and @prefix")
	f.BoolVar(&flags.labelAllBlankNodes, "label-all-blank-nodes", false,
		"keep a label on every blank node instead of nesting them")
	f.BoolVar(&flags.canonicalize, "canonicalize", false,
		"relabel blank nodes deterministically before formatting")
	f.BoolVar(&flags.warnUnsupportedNumbers, "warn-unsupported-numbers", false,
		"warn about numeric values that have no Turtle shorthand")
	f.StringSliceVar(&flags.predicateOrder, "predicate-order", nil,
		"predicates (IRIs, prefixed names or @preset) to sort before all others")
	f.StringSliceVar(&flags.subjectTypeOrder, "subject-type-order", nil,
		"rdf:type values (IRIs, prefixed names or @preset) whose subjects sort before all others")

	return root.ExecuteContext(context.Background())
}

// resolveOptions merges built-in defaults, the nearest .prttl.toml and
// the command line, in increasing precedence.
func resolveOptions(cmd *cobra.Command, flags *rootFlags) (*format.Options, error) {
	opts := format.DefaultOptions()

	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	cfg, path, err := loadConfig(wd)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if cfg != nil {
		loggerFromContext(cmd.Context()).Debug("using config file", "path", path)
		applyConfig(opts, cfg)
	}

	applyFlags(opts, cmd.Flags(), flags)

	var customPred, customType map[string][]string
	if cfg != nil {
		customPred = cfg.Presets.PredicateOrder
		customType = cfg.Presets.SubjectTypeOrder
	}
	if opts.PredicateOrder, err = format.ExpandPredicateOrder(opts.PredicateOrder, customPred); err != nil {
		return nil, err
	}
	if opts.SubjectTypeOrder, err = format.ExpandSubjectTypeOrder(opts.SubjectTypeOrder, customType); err != nil {
		return nil, err
	}

	opts.Check = flags.check
	opts.Logger = loggerFromContext(cmd.Context())
	return opts, nil
}

// applyFlags copies explicitly set flags onto the options, leaving
// config file and default values alone otherwise.
func applyFlags(opts *format.Options, set *pflag.FlagSet, flags *rootFlags) {
	if set.Changed("indentation") {
		opts.Indentation = strings.Repeat(" ", flags.indentation)
	}
	if set.Changed("single-entry-on-new-line") {
		opts.SingleLeafedNewLines = flags.singleEntryOnNewLine
	}
	if set.Changed("force") {
		opts.Force = flags.force
	}
	if set.Changed("no-sorting-ids") {
		opts.SortingIDs = !flags.noSortingIDs
	}
	if set.Changed("sparql-syntax") {
		opts.SPARQLSyntax = flags.sparqlSyntax
	}
	if set.Changed("label-all-blank-nodes") {
		opts.MaxNesting = !flags.labelAllBlankNodes
	}
	if set.Changed("canonicalize") {
		opts.CanonicalizeBlankNodes = flags.canonicalize
	}
	if set.Changed("warn-unsupported-numbers") {
		opts.WarnUnsupportedNumbers = flags.warnUnsupportedNumbers
	}
	if set.Changed("predicate-order") {
		opts.PredicateOrder = flags.predicateOrder
	}
	if set.Changed("subject-type-order") {
		opts.SubjectTypeOrder = flags.subjectTypeOrder
	}
}

func applyConfig(opts *format.Options, cfg *fileConfig) {
	if cfg.Indentation != nil {
		opts.Indentation = strings.Repeat(" ", *cfg.Indentation)
	}
	if cfg.SingleEntryOnNewLine != nil {
		opts.SingleLeafedNewLines = *cfg.SingleEntryOnNewLine
	}
	if cfg.Force != nil {
		opts.Force = *cfg.Force
	}
	if cfg.SortingIDs != nil {
		opts.SortingIDs = *cfg.SortingIDs
	}
	if cfg.SPARQLSyntax != nil {
		opts.SPARQLSyntax = *cfg.SPARQLSyntax
	}
	if cfg.LabelAllBlankNodes != nil {
		opts.MaxNesting = !*cfg.LabelAllBlankNodes
	}
	if cfg.Canonicalize != nil {
		opts.CanonicalizeBlankNodes = *cfg.Canonicalize
	}
	if cfg.WarnUnsupportedNumbers != nil {
		opts.WarnUnsupportedNumbers = *cfg.WarnUnsupportedNumbers
	}
	if cfg.PredicateOrder != nil {
		opts.PredicateOrder = cfg.PredicateOrder
	}
	if cfg.SubjectTypeOrder != nil {
		opts.SubjectTypeOrder = cfg.SubjectTypeOrder
	}
}
