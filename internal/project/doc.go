// Package project resolves the project context used by the prj CLI.
//
// Resolution runs in two phases. Discover reads PRJ_ROOT, PRJ_CONFIG_HOME,
// PRJ_DATA_HOME, PRJ_CACHE and PRJ_ID, falls back to repository discovery
// for the root, and reads a prj_id file from an environment-supplied config
// home. Assume additionally requires a root and derives any unset home from
// it:
//
//	<root>/.config
//	<root>/.data
//	<root>/.cache
//
// and then reads prj_id from the resolved config home if the id is still
// unset. Environment variables always take precedence over discovery, even
// when the path they name does not exist.
package project
