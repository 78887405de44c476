// Package normalize cleans network names for display
// Pipeline order
// 1 replace invalid UTF-8 with U+FFFD
// 2 drop control runes
// 3 drop format runes (zero-width joiners, BOM, bidi marks)
// 4 NFC composition
package normalize

import (
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Placeholder stands in for a name with nothing printable left
const Placeholder = "?"

// pool of fresh transformer chains; a chain is stateful and not safe to share
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			runes.ReplaceIllFormed(),
			runes.Remove(runes.In(unicode.Cc)),
			runes.Remove(runes.In(unicode.Cf)),
			norm.NFC,
		)
	},
}

// Label returns name fit for an HTML page or a log line
// The stored or broadcast name is never altered; this is presentation only
func Label(name string) string {
	if name == "" {
		return Placeholder
	}

	tr := chainPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, name)
	tr.Reset()
	chainPool.Put(tr)

	if err != nil || out == "" {
		return Placeholder
	}
	return out
}
