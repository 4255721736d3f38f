// Package domain contains the core domain model for nodesort.
//
// The domain is transport- and persistence-agnostic: it does not depend on YAML parsing,
// terminal rendering, or the filesystem. Infra/adapters map into/from these types.
package domain
