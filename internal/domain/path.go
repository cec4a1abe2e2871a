package domain

import "strings"

// PathSeparator joins label names into a materialized path
const PathSeparator = "/"

// ComputePath derives a node's materialized path from its name and its
// parent's (already up to date) path. Roots pass a nil parentPath.
func ComputePath(name string, parentPath *string) string {
	if parentPath == nil {
		return name
	}
	return *parentPath + PathSeparator + name
}

// SplitPath breaks a materialized path into its names, dropping empty
// segments so "a//b/" and "/a/b" both yield [a b]
func SplitPath(path string) []string {
	var names []string
	for _, part := range strings.Split(path, PathSeparator) {
		part = strings.TrimSpace(part)
		if part != "" {
			names = append(names, part)
		}
	}
	return names
}

// JoinPath is the inverse of SplitPath
func JoinPath(names ...string) string {
	return strings.Join(names, PathSeparator)
}
