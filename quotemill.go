// Package quotemill harvests long-form web content and distills it into a
// deduplicated set of short-form excerpts. It crawls heterogeneous sources
// (paginated CMS listings, syndication feeds, single URLs), extracts prose,
// segments it into bounded chunks, scores each chunk with an external
// classifier, and assembles the qualifying excerpts into quote records.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gemini/, sqlite/).
package quotemill
