// Package provider implements the per-platform-family directory tables.
//
// Each supported family (XDG for Linux and the generic Unix fallback,
// Windows, Apple, the mobile sandbox, and the no-filesystem web target) is
// one [Provider] implementation whose behavior is a table mapping every
// [Kind] to a resolution rule. The table is the central artifact: defaults
// differ kind-by-kind per OS convention, and each family's table is
// independently auditable and testable without build-tag gymnastics.
//
// Rule categories, mirrored from the conventions the families implement:
//
//   - environment override with a mandated default relative to home
//   - environment override with no default
//   - native catalog lookup (Apple sysdir, via the [Catalog] interface)
//   - fixed derivation from another kind (font = data + "fonts")
//   - unconditionally absent on this family
//   - read from the sandbox root state
//
// Resolution is a pure function of (kind, environment snapshot, provider
// state): nothing is cached, so environment or state changes are observed
// by the next lookup.
//
// Providers hold no reference to the real process environment; they are
// constructed with a [resolve.Env], which tests replace with a
// [resolve.MapEnv].
package provider
