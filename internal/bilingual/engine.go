// Package bilingual fills in the missing half of an item's display name
// before it reaches the store.
package bilingual

import (
	"context"
	"strings"
)

// Translator is the slice of the translation cache the engine needs.
type Translator interface {
	Translate(ctx context.Context, text, target string) string
}

// Engine derives whichever name field the operator left empty. Translation
// failures are invisible here: the translator falls back to the original
// text, so completion itself never fails.
type Engine struct {
	translator   Translator
	primaryTag   string
	secondaryTag string
}

func NewEngine(t Translator, primaryTag, secondaryTag string) *Engine {
	return &Engine{translator: t, primaryTag: primaryTag, secondaryTag: secondaryTag}
}

// Complete returns the (primary, secondary) name pair with at most one
// derivation applied:
//
//   - secondary empty, primary set: secondary is translated from primary
//   - primary empty, secondary set: primary is translated from secondary
//   - both empty or both set: passed through untouched, no translator call
//
// The supplied field is never modified beyond trimming. Create and edit run
// through the same path.
func (e *Engine) Complete(ctx context.Context, primary, secondary string) (string, string) {
	primary = strings.TrimSpace(primary)
	secondary = strings.TrimSpace(secondary)

	switch {
	case secondary == "" && primary != "":
		secondary = e.translator.Translate(ctx, primary, e.secondaryTag)
	case primary == "" && secondary != "":
		primary = e.translator.Translate(ctx, secondary, e.primaryTag)
	}

	return primary, secondary
}
