// Package openapi publishes field schemas as a Swagger 2.0 document.
//
// SchemaFor turns the metadata of a field.Schema into an object definition
// (go-openapi/spec). NewDocument gathers the definitions of several schemas,
// following translation sets to their element schemas, which are referenced
// as #/definitions/<Name>.
//
//	doc := openapi.NewDocument(openapi.Info{Title: "BFF", Version: "1.0"},
//		SignupSchema, pagination.OptionsSchema, pagination.MetaSchema)
//	doc.Register("fieldkit")
//	http.ListenAndServe(":8080", doc.Routes())
//
// Routes serves /openapi.json, /openapi.yaml and the Swagger UI under /docs/.
package openapi
