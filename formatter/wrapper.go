package formatter

import (
	"strings"

	"github.com/theoremus-urban-solutions/transit-catalogue/responder"
)

// Output formats
const (
	FormatJSON = "json"
	FormatXML  = "xml"
)

// NormalizeFormat maps a user supplied format to FormatJSON or FormatXML,
// defaulting to JSON
func NormalizeFormat(format string) string {
	if strings.EqualFold(strings.TrimSpace(format), FormatXML) {
		return FormatXML
	}
	return FormatJSON
}

// ContentType returns the HTTP content type for a normalized format
func ContentType(format string) string {
	if format == FormatXML {
		return "application/xml; charset=utf-8"
	}
	return "application/json; charset=utf-8"
}

// Build serializes responses in the requested format
func Build(res []responder.Response, format string) []byte {
	rb := newResponseBuilder()
	if NormalizeFormat(format) == FormatXML {
		return rb.BuildXML(res)
	}
	return rb.BuildJSON(res)
}

// BuildOne serializes a single response in the requested format
func BuildOne(res responder.Response, format string) []byte {
	rb := newResponseBuilder()
	if NormalizeFormat(format) == FormatXML {
		var b strings.Builder
		writeResponseXML(&b, res)
		return []byte(b.String())
	}
	return rb.BuildJSONOne(res)
}
