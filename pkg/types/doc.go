// Package types defines the core types and interfaces shared across filegroup.
// This includes the File entity the resolver classifies, the Matcher
// capability used for wildcard rules, and the group constants.
package types
