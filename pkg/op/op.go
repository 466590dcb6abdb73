// pkg/op/op.go
package op

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Verb is one of the fixed pacman-style operations understood by the engine.
type Verb int

const (
	// VerbInstall installs one or more packages by name (-S).
	VerbInstall Verb = iota
	// VerbSync refreshes the local package database (-Sy); with packages
	// given, they are installed after the refresh.
	VerbSync
	// VerbSearch searches the remote repositories (-Ss).
	VerbSearch
	// VerbUpgrade updates outdated packages (-Su).
	VerbUpgrade
	// VerbClean removes cached package files (-Sc).
	VerbClean
	// VerbQuery queries the local package database (-Q).
	VerbQuery
	// VerbRemove removes installed packages (-R).
	VerbRemove
	// VerbUpdate installs packages from local files (-U).
	VerbUpdate
)

// Flag is a single-letter refinement of a verb, following pacman's
// short-option vocabulary. The same letter may mean different things under
// different verbs (-Qs searches locally, -Rs removes recursively).
type Flag rune

const (
	// FlagChangelog views the changelog of a package (-Qc).
	FlagChangelog Flag = 'c'
	// FlagExplicit filters to explicitly installed packages (-Qe).
	FlagExplicit Flag = 'e'
	// FlagInfo displays detailed package information (-Qi, -Si).
	FlagInfo Flag = 'i'
	// FlagCheck verifies files owned by the given packages (-Qk).
	FlagCheck Flag = 'k'
	// FlagList lists files owned by a package (-Ql) or all packages in the
	// repositories (-Sl).
	FlagList Flag = 'l'
	// FlagForeign filters to packages not found in the sync databases (-Qm).
	FlagForeign Flag = 'm'
	// FlagOwns queries the package owning the given files (-Qo).
	FlagOwns Flag = 'o'
	// FlagFile queries a package file instead of a database entry (-Qp).
	FlagFile Flag = 'p'
	// FlagSearch searches locally installed packages (-Qs).
	FlagSearch Flag = 's'
	// FlagUpgrades filters to packages with an update available (-Qu).
	FlagUpgrades Flag = 'u'
	// FlagNoSave skips configuration backup files on removal (-Rn).
	FlagNoSave Flag = 'n'
	// FlagRecursive also removes no-longer-required dependencies (-Rs).
	FlagRecursive Flag = 's'
	// FlagRefresh refreshes the package database before upgrading (-Suy).
	FlagRefresh Flag = 'y'
	// FlagAll cleans the entire cache instead of outdated entries (-Scc).
	FlagAll Flag = 'c'
	// FlagGroups displays the members of a package group (-Sg).
	FlagGroups Flag = 'g'
	// FlagDownloadOnly retrieves packages without installing (-Sw).
	FlagDownloadOnly Flag = 'w'
)

// ErrInvalidOperation indicates a malformed operation that must never reach
// translation or execution.
var ErrInvalidOperation = errors.New("invalid operation")

// InvalidOperationError describes why an operation is malformed.
type InvalidOperationError struct {
	Op     Operation
	Reason string
}

func (e *InvalidOperationError) Error() string {
	return fmt.Sprintf("invalid operation %s: %s", e.Op, e.Reason)
}

func (e *InvalidOperationError) Unwrap() error { return ErrInvalidOperation }

// Operation is the canonical representation of one pacman-style request.
// It is constructed once per invocation and immutable afterwards.
type Operation struct {
	Verb     Verb
	Flags    []Flag
	Packages []string
}

// verbKeys maps each verb to its base dispatch key, the lowercase spelling
// of the pacman operation it corresponds to.
var verbKeys = map[Verb]string{
	VerbInstall: "s",
	VerbSync:    "sy",
	VerbSearch:  "ss",
	VerbUpgrade: "su",
	VerbClean:   "sc",
	VerbQuery:   "q",
	VerbRemove:  "r",
	VerbUpdate:  "u",
}

// verbNames is used for messages only.
var verbNames = map[Verb]string{
	VerbInstall: "install",
	VerbSync:    "sync",
	VerbSearch:  "search",
	VerbUpgrade: "upgrade",
	VerbClean:   "clean",
	VerbQuery:   "query",
	VerbRemove:  "remove",
	VerbUpdate:  "update",
}

// verbFlags lists the flag letters valid under each verb.
var verbFlags = map[Verb]string{
	VerbInstall: "gilw",
	VerbSync:    "",
	VerbSearch:  "",
	VerbUpgrade: "y",
	VerbClean:   "c",
	VerbQuery:   "ceiklmopsu",
	VerbRemove:  "ns",
	VerbUpdate:  "",
}

// String returns the verb name.
func (v Verb) String() string {
	if name, ok := verbNames[v]; ok {
		return name
	}
	return fmt.Sprintf("verb(%d)", int(v))
}

// Key returns the dispatch key for the operation: the verb's base key
// followed by the flag letters in ascending order, e.g. upgrade with
// FlagRefresh yields "suy" and remove with FlagNoSave and FlagRecursive
// yields "rns". Backend translation tables are indexed by this key.
func (o Operation) Key() string {
	base, ok := verbKeys[o.Verb]
	if !ok {
		return ""
	}
	letters := make([]string, 0, len(o.Flags))
	for _, f := range dedup(o.Flags) {
		letters = append(letters, string(rune(f)))
	}
	sort.Strings(letters)
	return base + strings.Join(letters, "")
}

// String renders the operation in pacman short form, e.g. "-Syu" or
// "-S foo bar". Verbs outside the closed set have no key and fall back to
// the verb's own name, so error messages for them stay printable.
func (o Operation) String() string {
	key := o.Key()
	var b strings.Builder
	if key == "" {
		b.WriteString(o.Verb.String())
	} else {
		b.WriteByte('-')
		b.WriteString(strings.ToUpper(key[:1]))
		b.WriteString(key[1:])
	}
	for _, pkg := range o.Packages {
		b.WriteByte(' ')
		b.WriteString(pkg)
	}
	return b.String()
}

// Validate checks verb/flag compatibility and package arity. The engine
// refuses to translate an operation that fails validation.
func (o Operation) Validate() error {
	valid, ok := verbFlags[o.Verb]
	if !ok {
		return &InvalidOperationError{Op: o, Reason: "unknown verb"}
	}
	for _, f := range o.Flags {
		if !strings.ContainsRune(valid, rune(f)) {
			return &InvalidOperationError{
				Op:     o,
				Reason: fmt.Sprintf("flag %q is not valid for %s", rune(f), o.Verb),
			}
		}
	}
	for _, pkg := range o.Packages {
		if strings.TrimSpace(pkg) == "" {
			return &InvalidOperationError{Op: o, Reason: "empty package name"}
		}
	}
	return o.validateArity()
}

func (o Operation) validateArity() error {
	n := len(o.Packages)
	switch o.Verb {
	case VerbInstall:
		// Listing the repositories (-Sl) or all groups (-Sg) is the one
		// install form that works without a package argument.
		if n == 0 && !o.hasFlag(FlagList) && !o.hasFlag(FlagGroups) {
			return &InvalidOperationError{
				Op:     o,
				Reason: "install requires at least one package",
			}
		}
	case VerbSearch, VerbRemove, VerbUpdate:
		if n == 0 {
			return &InvalidOperationError{
				Op:     o,
				Reason: fmt.Sprintf("%s requires at least one package", o.Verb),
			}
		}
	case VerbClean:
		if n > 0 {
			return &InvalidOperationError{Op: o, Reason: "clean takes no packages"}
		}
	case VerbQuery:
		if n == 0 && (o.hasFlag(FlagOwns) || o.hasFlag(FlagFile)) {
			return &InvalidOperationError{
				Op:     o,
				Reason: "query by owner or file requires an argument",
			}
		}
	}
	return nil
}

func (o Operation) hasFlag(f Flag) bool {
	for _, have := range o.Flags {
		if have == f {
			return true
		}
	}
	return false
}

func dedup(flags []Flag) []Flag {
	seen := make(map[Flag]bool, len(flags))
	out := make([]Flag, 0, len(flags))
	for _, f := range flags {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}
