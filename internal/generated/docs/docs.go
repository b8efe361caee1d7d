// Package docs registers the OpenAPI document with swag so echo-swagger can
// serve it at /swagger/doc.json.
package docs

import (
	"encoding/json"
	"sync"

	"purchasing/internal/generated/servers"

	"github.com/swaggo/swag"
)

type openAPIDoc struct {
	once sync.Once
	json string
}

// ReadDoc renders the embedded document as JSON. A broken document yields
// an empty object so the UI still loads.
func (d *openAPIDoc) ReadDoc() string {
	d.once.Do(func() {
		d.json = "{}"
		doc, err := servers.GetSwagger()
		if err != nil {
			return
		}
		raw, err := json.Marshal(doc)
		if err != nil {
			return
		}
		d.json = string(raw)
	})
	return d.json
}

func init() {
	swag.Register(swag.Name, &openAPIDoc{})
}
