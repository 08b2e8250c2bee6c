// Package api defines the Shoplist RPC surface: message types, procedure
// names and Connect handler/client constructors.
//
// Messages are plain Go structs carried with a JSON codec, so any Connect or
// plain HTTP client can call the service:
//
//	curl -H 'Content-Type: application/json' \
//	  -d '{"recipes":["Leek soup"]}' \
//	  http://localhost:8080/shoplist.v1.ShoppingService/BuildList
package api

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// codecNameJSON replaces Connect's protojson codec for this service.
const codecNameJSON = "json"

type jsonCodec struct{}

var _ connect.Codec = jsonCodec{}

func (jsonCodec) Name() string { return codecNameJSON }

func (jsonCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (jsonCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, msg)
}

// WithJSON is the codec option every handler and client in this package uses.
func WithJSON() connect.Option {
	return connect.WithCodec(jsonCodec{})
}
