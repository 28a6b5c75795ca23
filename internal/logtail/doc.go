// Package logtail reads the end of itemdeck's own log file for the in-app
// diagnostics view.
//
// Read keeps a ring buffer of maxLines strings while scanning the file once,
// so memory stays O(maxLines) regardless of file size. Tail decodes each line
// as a zerolog JSON object and Entry.Format renders it as
//
//	12:30:45 WRN asset breaker state change breaker=asset-host to=open
//
// Lines that are not JSON are shown verbatim.
package logtail
