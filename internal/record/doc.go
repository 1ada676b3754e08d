// Package record defines the tracked-message value types for msgtrail.
//
// This package contains type definitions and pure helpers only. All other
// internal packages import record; record imports nothing internal. This
// keeps it the foundational layer with no circular dependencies.
//
// Key design constraints:
//   - MessageID is the collection key and is never empty on a stored record
//   - Group is the only field mutated after a record is built
//   - Group names are NFC normalized so visually identical names compare equal
//   - All JSON tags use snake_case
package record
