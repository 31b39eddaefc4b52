// Package cli implements the interactive admin console. A top-level REPL
// dispatches to per-entity screens; each screen owns freshly created
// view-model stores, so no list state leaks between visits. All user-facing
// text goes through the i18n store.
package cli
