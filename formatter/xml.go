package formatter

import (
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/transit-catalogue/responder"
)

// BuildXML serializes responses to a <Responses> document in request order
func (rb *responseBuilder) BuildXML(res []responder.Response) []byte {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>")
	b.WriteString("<Responses>")
	for _, r := range res {
		writeResponseXML(&b, r)
	}
	b.WriteString("</Responses>")
	return []byte(b.String())
}

func writeResponseXML(b *strings.Builder, res responder.Response) {
	switch r := res.(type) {
	case responder.LineResponse:
		b.WriteString("<Bus>")
		writeIntElem(b, "RequestId", r.ID)
		writeFloatElem(b, "Curvature", r.Curvature)
		writeIntElem(b, "RouteLength", r.RouteLength)
		writeIntElem(b, "StopCount", r.StopCount)
		writeIntElem(b, "UniqueStopCount", r.UniqueStopCount)
		b.WriteString("</Bus>")
	case responder.StopResponse:
		b.WriteString("<Stop>")
		writeIntElem(b, "RequestId", r.ID)
		b.WriteString("<Buses>")
		for _, name := range r.Buses {
			writeStringElem(b, "Bus", name)
		}
		b.WriteString("</Buses>")
		b.WriteString("</Stop>")
	case responder.RouteResponse:
		b.WriteString("<Route>")
		writeIntElem(b, "RequestId", r.ID)
		writeFloatElem(b, "TotalTime", r.TotalTime)
		b.WriteString("<Items>")
		for _, it := range r.Items {
			writeRouteItemXML(b, it)
		}
		b.WriteString("</Items>")
		b.WriteString("</Route>")
	case responder.ErrorResponse:
		b.WriteString("<Error>")
		writeIntElem(b, "RequestId", r.ID)
		writeStringElem(b, "ErrorMessage", r.ErrorMessage)
		b.WriteString("</Error>")
	}
}

func writeRouteItemXML(b *strings.Builder, it responder.RouteItem) {
	switch it.Type {
	case responder.ItemWait:
		b.WriteString("<Wait>")
		writeStringElem(b, "StopName", it.StopName)
		writeFloatElem(b, "Time", it.Time)
		b.WriteString("</Wait>")
	case responder.ItemBus:
		b.WriteString("<Ride>")
		writeStringElem(b, "Bus", it.Bus)
		writeIntElem(b, "SpanCount", it.SpanCount)
		writeFloatElem(b, "Time", it.Time)
		b.WriteString("</Ride>")
	}
}

func writeStringElem(b *strings.Builder, name, v string) {
	b.WriteString("<" + name + ">")
	b.WriteString(xmlEscape(v))
	b.WriteString("</" + name + ">")
}

func writeIntElem(b *strings.Builder, name string, v int) {
	b.WriteString("<" + name + ">")
	b.WriteString(strconv.Itoa(v))
	b.WriteString("</" + name + ">")
}

func writeFloatElem(b *strings.Builder, name string, v float64) {
	b.WriteString("<" + name + ">")
	b.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	b.WriteString("</" + name + ">")
}

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"'", "&apos;",
)

func xmlEscape(s string) string {
	return xmlReplacer.Replace(s)
}
