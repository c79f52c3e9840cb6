// Draftmsg drafts conventional commit messages from staged changes.
//
// It scans the staged diff, classifies it against a keyword table
// (security, features, fixes, refactors, performance, components,
// dependencies, scripts), and prints a change summary plus a suggested
// "type(scope): description" message.
//
// Usage:
//
//	draftmsg                         # analyze staged changes
//	draftmsg suggest --message-only  # just the message line, for scripts
//	draftmsg suggest --commit        # commit with the suggestion after y/n
//	draftmsg hook install            # seed commit messages via git hook
//	draftmsg config init             # write a .draftmsg.yaml template
//
// Exit codes: 0 success, 1 no staged changes, 2 usage error, 3 git
// unavailable, 4 runtime error.
package main
