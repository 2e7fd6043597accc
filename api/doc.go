// Package api binds the JSON transformations to HTTP.
//
// Every operation is a POST under /api that takes a JSON body, extracts its
// named fields, and answers with the transformed text:
//
//	POST /api/add-property     {"json", "key", "value"}
//	POST /api/join             {"first", "second"}
//	POST /api/merge            {"template", "data"}
//	POST /api/generate-schema  raw sample, or {"sample", ...}
//	POST /api/serialize        {"object"}
//	POST /api/deserialize      {"value"}
//	POST /api/to-xml           {"serializedJson", "encode"}
//
// Presence checks follow JavaScript truthiness: "", 0, false and null count
// as missing. Client errors are answered with 400 and {"error": "..."};
// anything else with 500 and {"error": "...", "details": "..."}.
//
// The API description is served anonymously as Swagger 2.0 at
// /api/swagger.json and /api/swagger.yaml, with a Swagger UI page at
// /api/swagger. When [Config.APIKey] is set, operations require it in the
// X-API-Key header or the "code" query parameter.
package api
