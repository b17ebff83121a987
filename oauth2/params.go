package oauth2

import (
	"net/url"
	"strings"
)

// Param is a single key/value pair in a query string or form body.
// Parameters are kept as ordered slices rather than url.Values so that the
// encoded output is byte-for-byte reproducible in the order it was built.
type Param struct {
	Key   string
	Value string
}

// EncodeParams renders params as application/x-www-form-urlencoded text,
// preserving order and duplicates.
func EncodeParams(params []Param) string {
	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

// AppendQuery appends params to an existing raw query string.
func AppendQuery(rawQuery string, params []Param) string {
	encoded := EncodeParams(params)
	switch {
	case rawQuery == "":
		return encoded
	case encoded == "":
		return rawQuery
	}
	return rawQuery + "&" + encoded
}
