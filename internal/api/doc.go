// Package api provides the HTTP handlers of the practice service: word
// selection, session ingestion and reporting, and the flagged-word review
// log. Handlers receive their collaborators (catalog, stores) explicitly;
// nothing in this package holds global state.
package api
