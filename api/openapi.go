package api

import (
	"fmt"
	"net/http"

	"github.com/go-json-experiment/json"
	"github.com/goccy/go-yaml"
	"github.com/google/jsonschema-go/jsonschema"

	"go.jacobcolvin.com/jsonops/version"
)

// Document is a Swagger 2.0 API description.
type Document struct {
	Paths               map[string]PathItem           `json:"paths"`
	Definitions         map[string]*jsonschema.Schema `json:"definitions"`
	SecurityDefinitions map[string]SecurityScheme     `json:"securityDefinitions,omitempty"`
	Info                Info                          `json:"info"`
	Swagger             string                        `json:"swagger"`
	Host                string                        `json:"host,omitempty"`
	BasePath            string                        `json:"basePath"`
	Schemes             []string                      `json:"schemes"`
	Consumes            []string                      `json:"consumes"`
	Produces            []string                      `json:"produces"`
}

// Info holds API metadata.
type Info struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Version     string `json:"version"`
}

// PathItem lists the operations on one path.
type PathItem struct {
	Get  *Operation `json:"get,omitempty"`
	Post *Operation `json:"post,omitempty"`
}

// Operation describes one endpoint.
type Operation struct {
	Responses   map[string]Response   `json:"responses"`
	OperationID string                `json:"operationId"`
	Summary     string                `json:"summary"`
	Description string                `json:"description,omitempty"`
	Tags        []string              `json:"tags,omitempty"`
	Produces    []string              `json:"produces,omitempty"`
	Parameters  []Parameter           `json:"parameters,omitempty"`
	Security    []map[string][]string `json:"security,omitempty"`
}

// Parameter describes one operation input.
type Parameter struct {
	Schema      *jsonschema.Schema `json:"schema,omitempty"`
	Name        string             `json:"name"`
	In          string             `json:"in"`
	Description string             `json:"description,omitempty"`
	Type        string             `json:"type,omitempty"`
	Enum        []string           `json:"enum,omitempty"`
	Required    bool               `json:"required"`
}

// Response describes one response status.
type Response struct {
	Schema      *jsonschema.Schema `json:"schema,omitempty"`
	Description string             `json:"description"`
}

// SecurityScheme describes an API key location.
type SecurityScheme struct {
	Type string `json:"type"`
	Name string `json:"name"`
	In   string `json:"in"`
}

const (
	tagTransform = "transform"
	tagMeta      = "meta"
)

// NewDocument builds the API description. Request and response definitions
// are derived from the Go request types.
func NewDocument(apiVersion string) (*Document, error) {
	defs := map[string]*jsonschema.Schema{}

	for name, build := range map[string]func() (*jsonschema.Schema, error){
		"AddPropertyRequest":    schemaFor[AddPropertyRequest],
		"JoinRequest":           schemaFor[JoinRequest],
		"MergeRequest":          schemaFor[MergeRequest],
		"GenerateSchemaRequest": schemaFor[GenerateSchemaRequest],
		"SerializeRequest":      schemaFor[SerializeRequest],
		"DeserializeRequest":    schemaFor[DeserializeRequest],
		"ToXMLRequest":          schemaFor[ToXMLRequest],
		"ErrorResponse":         schemaFor[ErrorResponse],
		"VersionInfo":           schemaFor[version.Info],
	} {
		s, err := build()
		if err != nil {
			return nil, fmt.Errorf("definition %s: %w", name, err)
		}

		defs[name] = s
	}

	paths := map[string]PathItem{
		"/version": {Get: &Operation{
			OperationID: "Version",
			Summary:     "Build metadata of the running service.",
			Tags:        []string{tagMeta},
			Produces:    []string{contentTypeJSON},
			Responses: map[string]Response{
				"200": {Description: "Build metadata.", Schema: ref("VersionInfo")},
			},
		}},
	}

	for _, p := range postOperations() {
		paths["/"+p.route] = PathItem{Post: p.operation()}
	}

	return &Document{
		Swagger: "2.0",
		Info: Info{
			Title:       "jsonops",
			Description: "Stateless JSON transformation utilities.",
			Version:     apiVersion,
		},
		BasePath: "/api",
		Schemes:  []string{"https"},
		Consumes: []string{contentTypeJSON},
		Produces: []string{contentTypeJSON},
		SecurityDefinitions: map[string]SecurityScheme{
			"apiKeyHeader": {Type: "apiKey", Name: headerAPIKey, In: "header"},
			"apiKeyQuery":  {Type: "apiKey", Name: queryAPIKey, In: "query"},
		},
		Paths:       paths,
		Definitions: defs,
	}, nil
}

func schemaFor[T any]() (*jsonschema.Schema, error) {
	return jsonschema.For[T](&jsonschema.ForOptions{})
}

func ref(name string) *jsonschema.Schema {
	return &jsonschema.Schema{Ref: "#/definitions/" + name}
}

// postDoc documents one POST operation.
type postDoc struct {
	route       string
	id          string
	summary     string
	request     string
	produces    string
	description string
	params      []Parameter
}

func (p postDoc) operation() *Operation {
	return &Operation{
		OperationID: p.id,
		Summary:     p.summary,
		Description: p.description,
		Tags:        []string{tagTransform},
		Produces:    []string{p.produces, contentTypeJSON},
		Parameters: append([]Parameter{{
			Name:     "body",
			In:       "body",
			Required: true,
			Schema:   ref(p.request),
		}}, p.params...),
		Security: []map[string][]string{
			{"apiKeyHeader": {}},
			{"apiKeyQuery": {}},
		},
		Responses: map[string]Response{
			"200": {Description: "Transformation result."},
			"400": {Description: "Missing or invalid input.", Schema: ref("ErrorResponse")},
			"401": {Description: "Missing or wrong API key.", Schema: ref("ErrorResponse")},
			"413": {Description: "Request body too large.", Schema: ref("ErrorResponse")},
			"500": {Description: "Internal error.", Schema: ref("ErrorResponse")},
		},
	}
}

func postOperations() []postDoc {
	return []postDoc{
		{
			route:    "add-property",
			id:       "AddProperty",
			summary:  "Add or overwrite one property of a JSON object.",
			request:  "AddPropertyRequest",
			produces: contentTypeText,
		},
		{
			route:    "join",
			id:       "Join",
			summary:  "Shallow-merge two JSON objects; the second wins.",
			request:  "JoinRequest",
			produces: contentTypeText,
		},
		{
			route:   "merge",
			id:      "Merge",
			summary: "Merge a template with data.",
			description: "A text template has its {{path}} placeholders substituted. An object template " +
				"whose string values mostly name keys of data is filled by field substitution; any other " +
				"object template is deep-merged with data. The chosen mode is returned in the " +
				headerMergeMode + " header.",
			request:  "MergeRequest",
			produces: contentTypeText,
		},
		{
			route:    "generate-schema",
			id:       "GenerateSchema",
			summary:  "Infer a schema from a sample document.",
			request:  "GenerateSchemaRequest",
			produces: contentTypeJSON,
			params: []Parameter{{
				Name:        "dialect",
				In:          "query",
				Type:        "string",
				Description: "Output dialect.",
				Enum:        []string{"legacy", "draft-07"},
			}},
		},
		{
			route:    "serialize",
			id:       "Serialize",
			summary:  "Serialize a JSON value to compact text.",
			request:  "SerializeRequest",
			produces: contentTypeText,
		},
		{
			route:    "deserialize",
			id:       "Deserialize",
			summary:  "Parse JSON text and return it re-serialized.",
			request:  "DeserializeRequest",
			produces: contentTypeJSON,
		},
		{
			route:    "to-xml",
			id:       "ToXml",
			summary:  "Convert JSON text to XML.",
			request:  "ToXMLRequest",
			produces: contentTypeText,
		},
	}
}

// forRequest returns a copy of d describing the host that served r.
func (d *Document) forRequest(r *http.Request) *Document {
	out := *d
	out.Host = r.Host

	return &out
}

// MarshalJSON implements [encoding/json.Marshaler] with sorted map keys.
func (d *Document) MarshalJSON() ([]byte, error) {
	type document Document

	b, err := json.Marshal((*document)(d), json.Deterministic(true))
	if err != nil {
		return nil, fmt.Errorf("encoding api description: %w", err)
	}

	return b, nil
}

// YAML renders d as YAML.
func (d *Document) YAML() ([]byte, error) {
	b, err := d.MarshalJSON()
	if err != nil {
		return nil, err
	}

	out, err := yaml.JSONToYAML(b)
	if err != nil {
		return nil, fmt.Errorf("converting api description to yaml: %w", err)
	}

	return out, nil
}

func setDocumentHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+headerAPIKey)
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "0")
}

func (h *Handler) swaggerJSON(w http.ResponseWriter, r *http.Request) {
	setDocumentHeaders(w)
	writeJSON(w, http.StatusOK, h.doc.forRequest(r))
}

func (h *Handler) swaggerYAML(w http.ResponseWriter, r *http.Request) {
	out, err := h.doc.forRequest(r).YAML()
	if err != nil {
		writeError(w, http.StatusInternalServerError, ErrorResponse{
			Error:   "Internal server error occurred while serving Swagger specification",
			Details: err.Error(),
		})

		return
	}

	setDocumentHeaders(w)
	w.Header().Set("Content-Type", contentTypeYAML)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

func (h *Handler) swaggerUI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(swaggerUIPage))
}

const swaggerUIPage = `<!DOCTYPE html>
<html>
<head>
  <title>jsonops API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist/swagger-ui-bundle.js"></script>
  <script src="https://unpkg.com/swagger-ui-dist/swagger-ui-standalone-preset.js"></script>
  <script>
    window.onload = function () {
      SwaggerUIBundle({
        url: "/api/swagger.json",
        dom_id: "#swagger-ui",
        presets: [SwaggerUIBundle.presets.apis, SwaggerUIStandalonePreset],
        layout: "StandaloneLayout",
      });
    };
  </script>
</body>
</html>
`
