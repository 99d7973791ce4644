// Package pagedate infers temporal metadata from HTML documents: the
// published date, the modified date, every date mentioned anywhere, and the
// most recent date found. No single signal is reliable across the web, so
// several independent extraction strategies run over every document and a
// resolver reconciles their conflicting candidates into one answer with an
// auditable trail (raw text, method, confidence).
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, dateparse/, gemini/).
package pagedate
