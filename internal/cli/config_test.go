package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elevont/prttl/format"
)

func TestLoadConfigWalksTowardsRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, configFileName), `
indentation = 4
sparql_syntax = true
predicate_order = ["a", "ex:name"]
`)
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cfg, path, err := loadConfig(nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, configFileName), path)
	require.NotNil(t, cfg)
	require.NotNil(t, cfg.Indentation)
	assert.Equal(t, 4, *cfg.Indentation)
	require.NotNil(t, cfg.SPARQLSyntax)
	assert.True(t, *cfg.SPARQLSyntax)
	assert.Equal(t, []string{"a", "ex:name"}, cfg.PredicateOrder)
	assert.Nil(t, cfg.Force)
}

func TestLoadConfigParsesPresets(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, configFileName), `
predicate_order = ["@mine"]

[presets.predicate_order]
mine = ["a", "ex:name"]
`)
	cfg, _, err := loadConfig(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, []string{"@mine"}, cfg.PredicateOrder)
	assert.Equal(t, map[string][]string{"mine": {"a", "ex:name"}},
		cfg.Presets.PredicateOrder)
}

func TestLoadConfigMissingIsNotAnError(t *testing.T) {
	cfg, path, err := loadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, cfg)
	assert.Empty(t, path)
}

func TestLoadConfigReportsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, configFileName), "indentation = [broken")

	_, path, err := loadConfig(dir)
	assert.Error(t, err)
	assert.Equal(t, filepath.Join(dir, configFileName), path)
}

func TestApplyConfigTouchesOnlyPresentFields(t *testing.T) {
	opts := format.DefaultOptions()
	opts.Force = true

	indent := 1
	label := true
	applyConfig(opts, &fileConfig{
		Indentation:        &indent,
		LabelAllBlankNodes: &label,
	})

	assert.Equal(t, " ", opts.Indentation)
	assert.False(t, opts.MaxNesting)
	assert.True(t, opts.Force)
	assert.True(t, opts.SortingIDs)
}

func TestApplyFlagsOverridesOnlyChangedFlags(t *testing.T) {
	flags := &rootFlags{}
	set := pflag.NewFlagSet("prttl", pflag.ContinueOnError)
	set.IntVar(&flags.indentation, "indentation", 2, "")
	set.BoolVar(&flags.singleEntryOnNewLine, "single-entry-on-new-line", false, "")
	set.BoolVar(&flags.force, "force", false, "")
	set.BoolVar(&flags.noSortingIDs, "no-sorting-ids", false, "")
	set.BoolVar(&flags.sparqlSyntax, "sparql-syntax", false, "")
	set.BoolVar(&flags.labelAllBlankNodes, "label-all-blank-nodes", false, "")
	set.BoolVar(&flags.canonicalize, "canonicalize", false, "")
	set.BoolVar(&flags.warnUnsupportedNumbers, "warn-unsupported-numbers", false, "")
	set.StringSliceVar(&flags.predicateOrder, "predicate-order", nil, "")
	set.StringSliceVar(&flags.subjectTypeOrder, "subject-type-order", nil, "")
	require.NoError(t, set.Parse([]string{"--indentation=4", "--no-sorting-ids"}))

	opts := format.DefaultOptions()
	opts.Force = true
	applyFlags(opts, set, flags)

	assert.Equal(t, "    ", opts.Indentation)
	assert.False(t, opts.SortingIDs)
	assert.True(t, opts.Force)
	assert.True(t, opts.MaxNesting)
}
