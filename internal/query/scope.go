package query

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"
)

// ErrNoMatches reports a query that returned zero results. Commands map it
// to a distinct exit code so "nothing found" is told apart from a crash.
var ErrNoMatches = errors.New("no matches found")

// Scope restricts a query to one collection.
type Scope int

const (
	ScopeAll Scope = iota
	ScopeCallables
	ScopeAliases
	ScopeScripts
	ScopeContent
)

// ParseScope maps a user-supplied scope name to a Scope.
func ParseScope(s string) (Scope, error) {
	switch s {
	case "", "all":
		return ScopeAll, nil
	case "callables", "functions":
		return ScopeCallables, nil
	case "aliases":
		return ScopeAliases, nil
	case "scripts":
		return ScopeScripts, nil
	case "content":
		return ScopeContent, nil
	default:
		return ScopeAll, fmt.Errorf("unknown scope %q (use all, callables, aliases, scripts, or content)", s)
	}
}

func (s Scope) String() string {
	switch s {
	case ScopeCallables:
		return "callables"
	case ScopeAliases:
		return "aliases"
	case ScopeScripts:
		return "scripts"
	case ScopeContent:
		return "content"
	default:
		return "all"
	}
}

// Kind tags a result row with its source collection.
type Kind string

const (
	KindCallable Kind = "callable"
	KindAlias    Kind = "alias"
	KindScript   Kind = "script"
)

// fold case-folds s for caseless comparison. Casers are stateful, so one is
// created per call rather than shared.
func fold(s string) string {
	return cases.Fold().String(s)
}
