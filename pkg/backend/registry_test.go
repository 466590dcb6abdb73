// pkg/backend/registry_test.go
package backend

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLookPath resolves only the listed binaries and counts every probe.
type fakeLookPath struct {
	found map[string]bool
	calls int
}

func (f *fakeLookPath) look(file string) (string, error) {
	f.calls++
	if f.found[file] {
		return "/usr/bin/" + file, nil
	}
	return "", fmt.Errorf("%s: executable file not found", file)
}

func linuxRegistry(found ...string) (*Registry, *fakeLookPath) {
	lp := &fakeLookPath{found: make(map[string]bool)}
	for _, f := range found {
		lp.found[f] = true
	}
	return newRegistry(backendsFor("linux"), lp.look), lp
}

func TestAvailableFollowsPriorityOrder(t *testing.T) {
	reg, _ := linuxRegistry("pacman", "brew")

	var names []string
	for _, b := range reg.Available() {
		names = append(names, b.Name())
	}
	assert.Equal(t, []string{"pacman", "brew"}, names)
}

func TestSelectPrefersHighestPriority(t *testing.T) {
	reg, _ := linuxRegistry("pacman", "pip")

	b, err := reg.Select("")
	require.NoError(t, err)
	assert.Equal(t, "pacman", b.Name())
}

func TestSelectOverrideWithoutFallback(t *testing.T) {
	reg, _ := linuxRegistry("apt-get", "pacman")

	b, err := reg.Select("pacman")
	require.NoError(t, err)
	assert.Equal(t, "pacman", b.Name())

	// Named but unresolvable: no silent fallback to apt.
	reg, _ = linuxRegistry("apt-get")
	_, err = reg.Select("pacman")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoBackendAvailable))
}

func TestSelectUnknownName(t *testing.T) {
	reg, _ := linuxRegistry("apt-get")

	_, err := reg.Select("slackpkg")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoBackendAvailable))
}

func TestSelectNothingAvailable(t *testing.T) {
	reg, _ := linuxRegistry()

	_, err := reg.Select("")
	assert.True(t, errors.Is(err, ErrNoBackendAvailable))
}

func TestProbeCachedPerProcess(t *testing.T) {
	reg, lp := linuxRegistry("apt-get", "brew")

	reg.Available()
	probes := lp.calls
	require.Positive(t, probes)

	reg.Available()
	if _, err := reg.Select(""); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, probes, lp.calls, "each binary is probed at most once")
}

func TestWindowsRegistryHasNoUnixManagers(t *testing.T) {
	for _, b := range backendsFor("windows") {
		assert.NotContains(t, []string{"apt", "dnf", "pacman", "zypper", "apk"}, b.Name())
	}
}
