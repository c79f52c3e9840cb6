// Package gitctx is the git collaborator: it opens the enclosing
// repository, checks for staged changes, extracts the staged diff text,
// and can commit the index with a given message.
//
// Repository access goes through go-git; only the unified diff of the
// index is produced by shelling out to `git diff --cached`, which go-git
// cannot render.
package gitctx
