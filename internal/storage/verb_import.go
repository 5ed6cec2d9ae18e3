package storage

import (
	"strings"

	"github.com/grachmannico95/verbs-service/internal/domain"
)

type importOutcome int

const (
	outcomeCreated importOutcome = iota
	outcomeSkipped
	outcomeEnriched
	outcomeUpdated
)

// inputFromRow maps the known columns of an import row. Unknown columns are
// ignored.
func inputFromRow(row domain.Row) domain.VerbInput {
	name, _ := row.Lookup("name")
	translation, _ := row.Lookup("translation")
	example, _ := row.Lookup("example")
	return domain.VerbInput{
		Name:        strings.TrimSpace(name),
		Translation: strings.TrimSpace(translation),
		Example:     strings.TrimSpace(example),
	}
}

// mergeInput compares an import row with the stored verb. Filling a blank
// column enriches the verb; replacing a non-blank one updates it. Blank
// incoming values never clear anything.
func mergeInput(existing domain.Verb, input domain.VerbInput) (importOutcome, map[string]string) {
	changes := map[string]string{}
	updated := false

	for _, f := range []struct {
		column   string
		current  string
		incoming string
	}{
		{"translation", existing.Translation, input.Translation},
		{"example", existing.Example, input.Example},
	} {
		if f.incoming == "" || f.incoming == f.current {
			continue
		}
		if f.current != "" {
			updated = true
		}
		changes[f.column] = f.incoming
	}

	switch {
	case updated:
		return outcomeUpdated, changes
	case len(changes) > 0:
		return outcomeEnriched, changes
	default:
		return outcomeSkipped, nil
	}
}

func applyChanges(verb *domain.Verb, changes map[string]string) {
	if v, ok := changes["translation"]; ok {
		verb.Translation = v
	}
	if v, ok := changes["example"]; ok {
		verb.Example = v
	}
}

func newImportResult() *domain.ImportResult {
	return &domain.ImportResult{EnrichedVerbs: []domain.Verb{}}
}

func recordOutcome(result *domain.ImportResult, outcome importOutcome, verb domain.Verb) {
	switch outcome {
	case outcomeCreated:
		result.CreatedCount++
	case outcomeSkipped:
		result.SkippedCount++
	case outcomeEnriched:
		result.EnrichedCount++
		result.EnrichedVerbs = append(result.EnrichedVerbs, verb)
	case outcomeUpdated:
		result.UpdatedCount++
	}
}
