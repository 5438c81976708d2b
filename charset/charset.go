// Package charset decodes fetched HTML to UTF-8 using golang.org/x/net.
//
// Documents are treated as UTF-8 unless a byte order mark, a Content-Type
// charset parameter or a <meta> declaration in the first 1024 bytes names
// another encoding. There is no locale fallback.
package charset

import (
	"bytes"
	"fmt"
	"mime"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// prescanLimit is how far into the document a <meta> declaration is honored.
const prescanLimit = 1024

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode returns data as a UTF-8 string. contentType is the value of an
// HTTP Content-Type header and may be empty.
func Decode(data []byte, contentType string) (string, error) {
	e, name, certain := charset.DetermineEncoding(data, contentType)
	if !certain {
		label := metaCharset(data)
		if label == "" {
			return string(data), nil
		}
		if e, name = charset.Lookup(label); e == nil {
			return string(data), nil
		}
		// A <meta> cannot declare UTF-16: the bytes read so far were ASCII.
		if strings.HasPrefix(name, "utf-16") {
			return string(data), nil
		}
	}

	if name == "utf-8" {
		return string(bytes.TrimPrefix(data, utf8BOM)), nil
	}

	decoded, err := e.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", name, err)
	}
	return strings.TrimPrefix(string(decoded), "\ufeff"), nil
}

// metaCharset returns the encoding label declared by a <meta charset> or
// <meta http-equiv="Content-Type"> tag near the start of data.
func metaCharset(data []byte) string {
	if len(data) > prescanLimit {
		data = data[:prescanLimit]
	}

	z := html.NewTokenizer(bytes.NewReader(data))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return ""
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			if string(name) != "meta" {
				continue
			}

			var declared, httpEquiv, content string
			for hasAttr {
				var key, val []byte
				key, val, hasAttr = z.TagAttr()
				switch string(key) {
				case "charset":
					declared = string(val)
				case "http-equiv":
					httpEquiv = string(val)
				case "content":
					content = string(val)
				}
			}

			if declared != "" {
				return strings.TrimSpace(declared)
			}
			if strings.EqualFold(httpEquiv, "content-type") && content != "" {
				if _, params, err := mime.ParseMediaType(content); err == nil && params["charset"] != "" {
					return params["charset"]
				}
			}
		}
	}
}
