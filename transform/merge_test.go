package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/jsonops/jsonvalue"
	"go.jacobcolvin.com/jsonops/transform"
)

func TestRenderTemplate(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		template string
		data     string
		want     string
	}{
		"nested path": {
			template: "{{a.b}}",
			data:     `{"a":{"b":5}}`,
			want:     "5",
		},
		"missing key preserved": {
			template: "{{missing}}",
			data:     `{}`,
			want:     "{{missing}}",
		},
		"missing placeholder preserved verbatim with spaces": {
			template: "Hi {{ who }}!",
			data:     `{}`,
			want:     "Hi {{ who }}!",
		},
		"whitespace around path": {
			template: "Hello, {{  name  }}!",
			data:     `{"name":"Al"}`,
			want:     "Hello, Al!",
		},
		"multiple occurrences": {
			template: "{{x}}-{{y}}-{{x}}",
			data:     `{"x":1,"y":true}`,
			want:     "1-true-1",
		},
		"null becomes empty": {
			template: "[{{n}}]",
			data:     `{"n":null}`,
			want:     "[]",
		},
		"walk through scalar fails": {
			template: "{{a.b}}",
			data:     `{"a":"text"}`,
			want:     "{{a.b}}",
		},
		"array index": {
			template: "{{items.1.name}}",
			data:     `{"items":[{"name":"a"},{"name":"b"}]}`,
			want:     "b",
		},
		"array index out of range": {
			template: "{{items.5}}",
			data:     `{"items":[1]}`,
			want:     "{{items.5}}",
		},
		"array length not resolvable": {
			template: "{{items.length}}",
			data:     `{"items":[1,2]}`,
			want:     "{{items.length}}",
		},
		"non-canonical index not resolvable": {
			template: "{{items.01}}",
			data:     `{"items":[1,2]}`,
			want:     "{{items.01}}",
		},
		"object leaf renders as json": {
			template: "{{o}}",
			data:     `{"o":{"k":[1,"x"]}}`,
			want:     `{"k":[1,"x"]}`,
		},
		"not recursive": {
			template: "{{a}}",
			data:     `{"a":"{{b}}","b":"no"}`,
			want:     "{{b}}",
		},
		"non-object data": {
			template: "{{a}}",
			data:     `[1]`,
			want:     "{{a}}",
		},
		"no placeholders": {
			template: "plain { text }",
			data:     `{}`,
			want:     "plain { text }",
		},
		"float formatting": {
			template: "{{p}}",
			data:     `{"p":2.50}`,
			want:     "2.5",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := transform.RenderTemplate(tc.template, mustParse(t, tc.data))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		template       string
		data           string
		want           transform.Mode
		wantCandidates int
		wantMatches    int
	}{
		"all values are keys": {
			template:       `{"name":"fullName","age":"years"}`,
			data:           `{"fullName":"Al","years":30}`,
			want:           transform.ModeFieldSubstitution,
			wantCandidates: 2,
			wantMatches:    2,
		},
		"no values are keys": {
			template:       `{"a":"x","b":"y"}`,
			data:           `{"c":1}`,
			want:           transform.ModeDeepMerge,
			wantCandidates: 2,
			wantMatches:    0,
		},
		"exactly half": {
			template:       `{"a":"x","b":"literal"}`,
			data:           `{"x":1}`,
			want:           transform.ModeFieldSubstitution,
			wantCandidates: 2,
			wantMatches:    1,
		},
		"below half": {
			template:       `{"a":"x","b":"l1","c":"l2"}`,
			data:           `{"x":1}`,
			want:           transform.ModeDeepMerge,
			wantCandidates: 3,
			wantMatches:    1,
		},
		"no string values": {
			template:       `{"a":1,"b":{"c":"x"}}`,
			data:           `{"x":1}`,
			want:           transform.ModeDeepMerge,
			wantCandidates: 0,
			wantMatches:    0,
		},
		"blank strings ignored": {
			template:       `{"a":"  ","b":"","c":"x"}`,
			data:           `{"x":1}`,
			want:           transform.ModeFieldSubstitution,
			wantCandidates: 1,
			wantMatches:    1,
		},
		"padded value does not match": {
			template:       `{"a":" x "}`,
			data:           `{"x":1}`,
			want:           transform.ModeDeepMerge,
			wantCandidates: 1,
			wantMatches:    0,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			tmpl := mustParse(t, tc.template)
			data := mustParse(t, tc.data)

			assert.Equal(t, tc.want, transform.Classify(tmpl, data))

			tobj, _ := tmpl.AsObject()
			dobj, _ := data.AsObject()
			candidates, matches := transform.Tally(tobj, dobj)
			assert.Equal(t, tc.wantCandidates, candidates)
			assert.Equal(t, tc.wantMatches, matches)
		})
	}

	t.Run("non-object data", func(t *testing.T) {
		t.Parallel()

		got := transform.Classify(mustParse(t, `{"a":"x"}`), mustParse(t, `"x"`))
		assert.Equal(t, transform.ModeDeepMerge, got)
	})
}

func TestFieldSubstitute(t *testing.T) {
	t.Parallel()

	tmpl := mustObject(t, `{"name":"fullName","age":"years","fixed":7,"nested":{"k":"fullName"},"blank":"","other":"nope"}`)
	data := mustObject(t, `{"fullName":"Al","years":30}`)

	got := transform.FieldSubstitute(tmpl, data)

	b, err := jsonvalue.Marshal(jsonvalue.ObjectValue(got))
	require.NoError(t, err)
	assert.Equal(t,
		`{"name":"Al","age":30,"fixed":7,"nested":{"k":"fullName"},"blank":"","other":"nope"}`,
		string(b))
}

func TestMerge(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		template jsonvalue.Value
		data     jsonvalue.Value
		want     string
		wantMode transform.Mode
		wantErr  error
	}{
		"text template": {
			template: jsonvalue.String("Dear {{user.name}}, you owe {{amount}}."),
			data:     jsonvalue.String(`{"user":{"name":"Al"},"amount":12.5}`),
			want:     "Dear Al, you owe 12.5.",
			wantMode: transform.ModeTemplate,
		},
		"json string template is field substitution": {
			template: jsonvalue.String(`{"name":"fullName","age":"years"}`),
			data:     jsonvalue.String(`{"fullName":"Al","years":30}`),
			want:     `{"name":"Al","age":30}`,
			wantMode: transform.ModeFieldSubstitution,
		},
		"object template deep merge": {
			template: jsonvalue.String(`{"a":"x","b":"y"}`),
			data:     jsonvalue.String(`{"c":1}`),
			want:     `{"a":"x","b":"y","c":1}`,
			wantMode: transform.ModeDeepMerge,
		},
		"structured inputs": {
			template: jsonvalue.ObjectValue(jsonvalue.ObjectOf(
				jsonvalue.Member{Key: "o", Value: jsonvalue.ObjectValue(jsonvalue.ObjectOf(
					jsonvalue.Member{Key: "x", Value: jsonvalue.Number(1)},
				))},
			)),
			data: jsonvalue.ObjectValue(jsonvalue.ObjectOf(
				jsonvalue.Member{Key: "o", Value: jsonvalue.ObjectValue(jsonvalue.ObjectOf(
					jsonvalue.Member{Key: "y", Value: jsonvalue.Number(2)},
				))},
			)),
			want:     `{"o":{"x":1,"y":2}}`,
			wantMode: transform.ModeDeepMerge,
		},
		"quoted json string template renders as text": {
			template: jsonvalue.String(`"Hi {{n}}"`),
			data:     jsonvalue.String(`{"n":"Bo"}`),
			want:     "Hi Bo",
			wantMode: transform.ModeTemplate,
		},
		"malformed data": {
			template: jsonvalue.String("{{a}}"),
			data:     jsonvalue.String("{not json"),
			wantErr:  transform.ErrInvalidInput,
		},
		"array template": {
			template: jsonvalue.String(`[1,2]`),
			data:     jsonvalue.String(`{}`),
			wantErr:  transform.ErrInvalidInput,
		},
		"number template": {
			template: jsonvalue.Number(3),
			data:     jsonvalue.String(`{}`),
			wantErr:  transform.ErrInvalidInput,
		},
		"missing template": {
			template: jsonvalue.Null(),
			data:     jsonvalue.String(`{}`),
			wantErr:  transform.ErrMissingInput,
		},
		"missing data": {
			template: jsonvalue.String("x"),
			data:     jsonvalue.Null(),
			wantErr:  transform.ErrMissingInput,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			res, err := transform.Merge(tc.template, tc.data)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantMode, res.Mode)

			got, err := res.Text()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMergeMalformedDataKinds(t *testing.T) {
	t.Parallel()

	_, err := transform.Merge(jsonvalue.String("{{a}}"), jsonvalue.String("nope"))
	require.ErrorIs(t, err, transform.ErrInvalidInput)
	require.ErrorIs(t, err, transform.ErrMalformedJSON)
}

func TestModeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "deep-merge", transform.ModeDeepMerge.String())
	assert.Equal(t, "field-substitution", transform.ModeFieldSubstitution.String())
	assert.Equal(t, "template", transform.ModeTemplate.String())
	assert.Equal(t, "Mode(9)", transform.Mode(9).String())
}

func TestSerializeDeserialize(t *testing.T) {
	t.Parallel()

	got, err := transform.Deserialize(" {\"b\": [1, 2.0], \"a\": \"<x>\"} ")
	require.NoError(t, err)
	assert.Equal(t, `{"b":[1,2],"a":"<x>"}`, got)

	_, err = transform.Deserialize("{")
	require.ErrorIs(t, err, transform.ErrMalformedJSON)

	s, err := transform.Serialize(jsonvalue.Array(jsonvalue.Bool(true), jsonvalue.Null()))
	require.NoError(t, err)
	assert.Equal(t, `[true,null]`, s)
}
