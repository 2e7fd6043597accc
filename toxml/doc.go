// Package toxml projects JSON values onto XML element trees.
//
// The projection is one-way and attribute-free: every JSON value becomes
// element content, object keys become element names, and array elements
// become <item> elements. A top-level object yields its members as sibling
// elements with no enclosing root; any other top-level value is wrapped in
// <root>.
//
//	toxml.Render(v) // {"a":1,"b":null} -> <a>1</a><b></b>
//
// Keys are passed through [SanitizeName] and text content through
// [EscapeText]. [Convert] optionally applies [PercentEncode] to the result.
package toxml
