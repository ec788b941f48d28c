package svgraster

import (
	"encoding/xml"
	"errors"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
)

// pixels per unit, at 96 dpi
var unitToPx = map[string]float64{
	"":   1,
	"px": 1,
	"pt": 96. / 72,
	"pc": 16,
	"mm": 96. / 25.4,
	"cm": 96. / 2.54,
	"in": 96,
}

// parseLength returns the length in pixels, or 0 for missing,
// relative (percentage, em) or invalid values.
func parseLength(v string) float64 {
	v = strings.TrimSpace(v)
	i := len(v)
	for i > 0 && (v[i-1] < '0' || v[i-1] > '9') && v[i-1] != '.' {
		i--
	}
	factor, ok := unitToPx[strings.ToLower(v[i:])]
	if !ok {
		return 0
	}
	f, err := strconv.ParseFloat(v[:i], 64)
	if err != nil || f < 0 {
		return 0
	}
	return f * factor
}

// documentSize reads the width and height attributes of the root element.
// Missing values are returned as 0.
func documentSize(stream io.Reader) (w, h float64, err error) {
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				return 0, 0, errors.New("invalid svg xml icon")
			}
			return 0, 0, err
		}
		se, ok := t.(xml.StartElement)
		if !ok {
			continue
		}
		for _, attr := range se.Attr {
			switch attr.Name.Local {
			case "width":
				w = parseLength(attr.Value)
			case "height":
				h = parseLength(attr.Value)
			}
		}
		return w, h, nil
	}
}
