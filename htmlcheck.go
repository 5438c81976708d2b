// Package htmlcheck checks HTML documents for the presence of elements
// matching a list of CSS selectors and reports the outcome as JSON.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, rod/).
package htmlcheck
