package transform

import "go.jacobcolvin.com/jsonops/jsonvalue"

// MergeObjects merges data into template recursively, right-biased.
//
// When template is not an object the result is data. When data is not an
// object (null included) the result is template. Otherwise every key of
// data is applied to a copy of template: where both sides hold objects they
// are merged recursively, and in every other case data's value replaces
// template's. Arrays are replaced wholesale, never merged element by element.
func MergeObjects(template, data jsonvalue.Value) jsonvalue.Value {
	tobj, ok := template.AsObject()
	if !ok {
		return data
	}

	dobj, ok := data.AsObject()
	if !ok {
		return template
	}

	out := tobj.Clone()

	for k, dv := range dobj.All() {
		tv, exists := out.Get(k)
		if exists && tv.IsObject() && dv.IsObject() {
			out.Set(k, MergeObjects(tv, dv))
			continue
		}

		out.Set(k, dv)
	}

	return jsonvalue.ObjectValue(out)
}
