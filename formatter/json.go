package formatter

import (
	"encoding/json"

	"github.com/theoremus-urban-solutions/transit-catalogue/responder"
)

type responseBuilder struct{}

func newResponseBuilder() *responseBuilder { return &responseBuilder{} }

// NewResponseBuilder creates a new response builder for formatting stat responses
func NewResponseBuilder() *responseBuilder {
	return newResponseBuilder()
}

// BuildJSON serializes responses to a JSON array in request order
func (rb *responseBuilder) BuildJSON(res []responder.Response) []byte {
	if res == nil {
		res = []responder.Response{}
	}
	b, _ := json.Marshal(res)
	return b
}

// BuildJSONOne serializes a single response
func (rb *responseBuilder) BuildJSONOne(res responder.Response) []byte {
	b, _ := json.Marshal(res)
	return b
}
