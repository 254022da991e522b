// Package siteindex discovers, caches, and semantically indexes the textual
// content of a single marketing website. It crawls an allow-listed slice of
// the site into a JSON corpus snapshot, lazily attaches embedding vectors,
// ranks documents by cosine similarity to ground natural-language answers,
// and produces geographically filtered content recommendations for a user
// profile.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or concern (e.g., goquery/, gemini/, fs/).
package siteindex
