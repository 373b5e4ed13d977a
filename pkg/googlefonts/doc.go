// Package googlefonts fetches font families from the Google Fonts
// distribution service and caches the downloaded assets locally.
//
// # Overview
//
// A [Client] resolves a family name in two steps:
//
//  1. One GET of the css2 stylesheet covering all requested weights at
//     once. The response is parsed into a weight-to-URL map; a weight the
//     service does not offer substitutes the numerically closest one.
//  2. One GET per missing asset, written to the cache directory under a
//     deterministic name (<family>_<role>.<ext>). An asset already on
//     disk is reused without any network call, so repeat fetches of the
//     same family are pure cache hits.
//
// The request carries a browser-like User-Agent so the service serves
// compressed woff2 URLs instead of the legacy TTF fallback.
//
// # Failure model
//
// Each call makes a single timed attempt per request; there are no
// retries. A stylesheet failure fails the whole fetch. An individual
// asset download failure only skips that role; the completion rules in
// the fontset package then promote or duplicate the surviving roles into
// a full set. Only when no asset at all could be resolved does Fetch
// return an error.
package googlefonts
