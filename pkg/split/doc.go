// Package split contains the core domain logic for subsplit: listing the
// subjects of an imaging collection, partitioning them into evenly sized
// groups, planning the destination trees, and copying each group's subject
// directories without touching the source. It is used by the CLI layer but
// can also be embedded in other tooling that needs programmatic collection
// splitting.
package split
