// pkg/backend/backend_test.go
package backend

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pacgo/pkg/op"
)

func install(pkgs ...string) op.Operation {
	return op.Operation{Verb: op.VerbInstall, Packages: pkgs}
}

func TestAptInstall(t *testing.T) {
	tmpl, err := NewApt().Translate(install("foo"), TranslateOptions{})
	require.NoError(t, err)
	require.Len(t, tmpl.Steps, 1)

	step := tmpl.Steps[0]
	assert.Equal(t, []string{"apt-get", "install", "foo"}, step.Argv)
	assert.True(t, step.MayPrompt)
	assert.True(t, step.RequiresRoot)
	assert.Empty(t, step.IgnorableExitCodes)
}

func TestAptInstallNoConfirm(t *testing.T) {
	tmpl, err := NewApt().Translate(install("foo"), TranslateOptions{NoConfirm: true})
	require.NoError(t, err)
	require.Len(t, tmpl.Steps, 1)

	step := tmpl.Steps[0]
	assert.Equal(t, []string{"apt-get", "install", "foo", "--yes"}, step.Argv)
	assert.False(t, step.MayPrompt, "assume-yes flag replaces the prompt")
}

func TestAptInstallReinstall(t *testing.T) {
	tmpl, err := NewApt().Translate(install("foo"), TranslateOptions{Reinstall: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"apt-get", "install", "--reinstall", "foo"}, tmpl.Steps[0].Argv)
}

func TestAptInstallNoCacheAppendsClean(t *testing.T) {
	tmpl, err := NewApt().Translate(install("foo"), TranslateOptions{NoCache: true})
	require.NoError(t, err)
	require.Len(t, tmpl.Steps, 2)
	assert.Equal(t, []string{"apt-get", "clean"}, tmpl.Steps[1].Argv)
	assert.True(t, tmpl.Steps[1].RequiresRoot)
}

func TestAptInstallExtraFlags(t *testing.T) {
	tmpl, err := NewApt().Translate(install("foo"), TranslateOptions{ExtraFlags: []string{"--fix-broken"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"apt-get", "install", "foo", "--fix-broken"}, tmpl.Steps[0].Argv)
}

func TestAptUpgradeAllIsTwoSteps(t *testing.T) {
	tmpl, err := NewApt().Translate(op.Operation{Verb: op.VerbUpgrade}, TranslateOptions{})
	require.NoError(t, err)
	require.Len(t, tmpl.Steps, 2)
	assert.Equal(t, []string{"apt-get", "upgrade"}, tmpl.Steps[0].Argv)
	assert.Equal(t, []string{"apt-get", "dist-upgrade"}, tmpl.Steps[1].Argv)
}

func TestAptUpgradeRefreshPrependsUpdate(t *testing.T) {
	operation := op.Operation{Verb: op.VerbUpgrade, Flags: []op.Flag{op.FlagRefresh}}
	tmpl, err := NewApt().Translate(operation, TranslateOptions{})
	require.NoError(t, err)
	require.Len(t, tmpl.Steps, 3)
	assert.Equal(t, []string{"apt-get", "update"}, tmpl.Steps[0].Argv)
}

func TestTranslateIsPure(t *testing.T) {
	operation := op.Operation{Verb: op.VerbUpgrade, Flags: []op.Flag{op.FlagRefresh}}
	opts := TranslateOptions{NoConfirm: true, NoCache: true}

	first, err := NewApt().Translate(operation, opts)
	require.NoError(t, err)
	second, err := NewApt().Translate(operation, opts)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestTranslateRejectsInvalidOperation(t *testing.T) {
	_, err := NewApt().Translate(op.Operation{Verb: op.VerbInstall}, TranslateOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, op.ErrInvalidOperation))
}

func TestPipSearchUnsupported(t *testing.T) {
	_, err := NewPip().Translate(op.Operation{Verb: op.VerbSearch, Packages: []string{"x"}}, TranslateOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedOperation))

	var uerr *UnsupportedOperationError
	require.True(t, errors.As(err, &uerr))
	assert.Equal(t, "pip", uerr.Backend)
}

func TestDnfCheckUpdateExitCodeIgnorable(t *testing.T) {
	operation := op.Operation{Verb: op.VerbQuery, Flags: []op.Flag{op.FlagUpgrades}}
	tmpl, err := NewDnf().Translate(operation, TranslateOptions{})
	require.NoError(t, err)
	require.Len(t, tmpl.Steps, 1)
	assert.Equal(t, []int{100}, tmpl.Steps[0].IgnorableExitCodes)
}

func TestChocoRebootCodesIgnorable(t *testing.T) {
	tmpl, err := NewChoco().Translate(install("foo"), TranslateOptions{})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1641, 3010}, tmpl.Steps[0].IgnorableExitCodes)
}

func TestNeedsRoot(t *testing.T) {
	assert.True(t, NewApt().NeedsRoot(install("foo")))
	assert.False(t, NewApt().NeedsRoot(op.Operation{Verb: op.VerbQuery}))
	assert.False(t, NewBrew().NeedsRoot(install("foo")))
	assert.False(t, NewScoop().NeedsRoot(install("foo")))
}

func TestBrewPromptPatterns(t *testing.T) {
	prompts := NewBrew().PromptPatterns()
	require.NotEmpty(t, prompts)

	matched := false
	for _, p := range prompts {
		if p.Pattern.MatchString("Would you like to continue? [y/N] ") {
			matched = true
			assert.Equal(t, "y", p.Response)
		}
	}
	assert.True(t, matched, "uninstall confirmation must be recognized")
}

func TestBrewInstallStaysInteractiveUnderNoConfirm(t *testing.T) {
	tmpl, err := NewBrew().Translate(install("foo"), TranslateOptions{NoConfirm: true})
	require.NoError(t, err)
	assert.True(t, tmpl.Steps[0].MayPrompt, "no native flag, interception handles it")
	assert.NotContains(t, tmpl.Steps[0].Argv, "--yes")
}

func TestPacmanInstallNeededByDefault(t *testing.T) {
	tmpl, err := NewPacman().Translate(install("foo"), TranslateOptions{})
	require.NoError(t, err)
	assert.Contains(t, tmpl.Steps[0].Argv, "--needed")

	tmpl, err = NewPacman().Translate(install("foo"), TranslateOptions{Reinstall: true})
	require.NoError(t, err)
	assert.NotContains(t, tmpl.Steps[0].Argv, "--needed")
}
