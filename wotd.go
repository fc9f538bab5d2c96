// Package wotd fetches the Duden "Wort des Tages" (word of the day) and
// extracts its dictionary entry into a flat record.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or role (e.g., cascadia/, http/, slog/).
package wotd
