// Package fontset resolves a three-weight font set (light, regular, bold)
// for downstream rendering tools.
//
// A [Set] is produced from one of three sources, tried in priority order:
//
//  1. A named web font family, fetched and cached by a [RemoteFetcher]
//     (see the googlefonts package)
//  2. A local file or directory, classified by filename patterns
//  3. The bundled default family materialized into the fonts root
//
// The [Resolver] orchestrates the chain and short-circuits on the first
// source that yields a complete set. Results are never partial: a returned
// Set always carries a usable path for every role.
//
// # Weight matching
//
// Weights map to roles through a fixed table (300 is light, 400 regular,
// 700 bold; anything else counts as regular). When a source offers other
// weights, [Closest] picks the numerically nearest one. Local files are
// bucketed by [ClassifyStem], which tests filename stems against per-role
// pattern lists in a fixed role order (bold, regular, light) so that an
// ambiguous name is always claimed by the same role.
package fontset
