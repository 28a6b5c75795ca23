// Package catalog talks to the remote item catalog and its image host.
//
// The catalog endpoint returns the whole inventory table as a JSON array of
// {"id": int, "name": string?} objects in one response. There is no paging and
// no retry: a failed fetch leaves the session offline.
//
// Images live at base + id + ".webp". AssetProber issues HEAD requests for
// them through a rate limiter and a circuit breaker; any failure means the
// card is hidden. A 4xx answer is reported as ErrAssetMissing and does not
// count against the breaker, while transport errors and 5xx answers do.
package catalog
