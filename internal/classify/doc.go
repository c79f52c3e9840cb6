// Package classify turns staged-diff text into a change summary and a
// suggested conventional commit message.
//
// The core is a single pure pass: [Scan] counts added/removed lines and
// matches an ordered [KeywordTable] against the diff, [Suggest] picks a
// commit type by a fixed priority ladder (security first) and drafts a
// "type(scope): description" message, and [FormatReport] renders the
// summary as deterministic text. Nothing here touches git, the filesystem,
// or the network; obtaining the diff and printing results belong to the
// surrounding layers.
package classify
