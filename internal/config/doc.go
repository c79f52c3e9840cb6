// Package config loads and merges draftmsg configuration.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (DRAFTMSG_FORMAT, DRAFTMSG_NO_COLOR)
//  3. .draftmsg.yaml in the repo root, working directory, or home directory
//  4. Built-in defaults
//
// The keyword table itself is compiled into the classify package; config
// can only append extra keywords to existing categories, never invent new
// ones.
package config
