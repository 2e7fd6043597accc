package transform

import (
	"fmt"
	"strings"

	"go.jacobcolvin.com/jsonops/jsonvalue"
)

// Mode is the strategy [Merge] applied.
type Mode int

// Merge strategies.
const (
	// ModeDeepMerge merges the data object into the template object.
	ModeDeepMerge Mode = iota
	// ModeFieldSubstitution replaces template values that name data keys.
	ModeFieldSubstitution
	// ModeTemplate renders a text template.
	ModeTemplate
)

// String returns the name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeDeepMerge:
		return "deep-merge"
	case ModeFieldSubstitution:
		return "field-substitution"
	case ModeTemplate:
		return "template"
	}

	return fmt.Sprintf("Mode(%d)", int(m))
}

// fieldSubstitutionThreshold is the fraction of non-blank template strings
// that must name data keys for [Classify] to choose field substitution.
const fieldSubstitutionThreshold = 0.5

// Tally counts the template's non-blank string values and how many of them
// are keys of data. Blankness is judged after trimming whitespace, but the
// key match uses the untrimmed value.
func Tally(template, data *jsonvalue.Object) (candidates, matches int) {
	for _, v := range template.All() {
		s, ok := v.AsString()
		if !ok || strings.TrimSpace(s) == "" {
			continue
		}

		candidates++

		if data.Has(s) {
			matches++
		}
	}

	return candidates, matches
}

// Classify decides how an object template combines with data. It returns
// [ModeFieldSubstitution] when both are objects, the template has at least
// one non-blank string value, and at least half of those values are keys of
// data. Every other combination is [ModeDeepMerge].
func Classify(template, data jsonvalue.Value) Mode {
	tobj, ok := template.AsObject()
	if !ok {
		return ModeDeepMerge
	}

	dobj, ok := data.AsObject()
	if !ok {
		return ModeDeepMerge
	}

	candidates, matches := Tally(tobj, dobj)
	if candidates == 0 {
		return ModeDeepMerge
	}

	if float64(matches)/float64(candidates) >= fieldSubstitutionThreshold {
		return ModeFieldSubstitution
	}

	return ModeDeepMerge
}

// FieldSubstitute returns a copy of template in which every non-blank
// string value that is a key of data is replaced by data's value for that
// key. All other template values are kept verbatim.
func FieldSubstitute(template, data *jsonvalue.Object) *jsonvalue.Object {
	out := jsonvalue.NewObject()

	for k, v := range template.All() {
		if s, ok := v.AsString(); ok && strings.TrimSpace(s) != "" {
			if dv, found := data.Get(s); found {
				out.Set(k, dv)
				continue
			}
		}

		out.Set(k, v)
	}

	return out
}

// Result is the outcome of [Merge].
type Result struct {
	// Value is a string for [ModeTemplate] and an object otherwise.
	Value jsonvalue.Value
	Mode  Mode
}

// Text returns the result as response text: the rendered string itself for
// [ModeTemplate], or the compact JSON serialization of the object.
func (r Result) Text() (string, error) {
	if s, ok := r.Value.AsString(); ok && r.Mode == ModeTemplate {
		return s, nil
	}

	b, err := jsonvalue.Marshal(r.Value)
	if err != nil {
		return "", fmt.Errorf("serialize result: %w", err)
	}

	return string(b), nil
}

// Merge combines a template with data.
//
// A string template is first parsed as JSON; when that fails it is used as
// a text template. Structured templates are used as given. A string data
// input must parse as JSON. A null template or data is missing input.
//
// The parsed template selects the strategy: a string renders with
// [RenderTemplate], an object goes through [Classify] to either
// [FieldSubstitute] or [MergeObjects], and anything else is invalid input.
func Merge(template, data jsonvalue.Value) (Result, error) {
	if template.IsNull() {
		return Result{}, fieldError("template", ErrMissingInput)
	}

	if data.IsNull() {
		return Result{}, fieldError("data", ErrMissingInput)
	}

	if s, ok := template.AsString(); ok {
		template = jsonvalue.Decode(s).Value()
	}

	if s, ok := data.AsString(); ok {
		parsed, err := jsonvalue.ParseString(s)
		if err != nil {
			return Result{}, fieldError("data", fmt.Errorf("%w: %w: %w", ErrInvalidInput, ErrMalformedJSON, err))
		}

		data = parsed
	}

	switch template.Kind() {
	case jsonvalue.KindString:
		s, _ := template.AsString()

		return Result{
			Value: jsonvalue.String(RenderTemplate(s, data)),
			Mode:  ModeTemplate,
		}, nil

	case jsonvalue.KindObject:
		mode := Classify(template, data)
		if mode == ModeFieldSubstitution {
			tobj, _ := template.AsObject()
			dobj, _ := data.AsObject()

			return Result{
				Value: jsonvalue.ObjectValue(FieldSubstitute(tobj, dobj)),
				Mode:  mode,
			}, nil
		}

		return Result{Value: MergeObjects(template, data), Mode: mode}, nil
	}

	return Result{}, fieldError("template",
		fmt.Errorf("%w: must be either a JSON object or a string, not %s", ErrInvalidInput, describe(template)))
}
