// Package services provides domain services that implement business logic
// which doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - DescriptionMarkup: a parser for the [text](url) link syntax used in
//     product descriptions, with an HTML-escaping renderer
package services
