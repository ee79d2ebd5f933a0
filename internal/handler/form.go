package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const maxFormMemory = 1 << 20

var errNotFlatForm = errors.New("form values must be strings or numbers")

// readForm collects the submitted form as flat string values. URL-encoded
// and multipart bodies keep the first value of each key; a JSON body must be
// an object whose values are strings or numbers.
func readForm(c *gin.Context) (map[string]string, error) {
	switch c.ContentType() {
	case binding.MIMEJSON:
		return readJSONForm(c.Writer, c.Request)
	case binding.MIMEMultipartPOSTForm:
		if err := c.Request.ParseMultipartForm(maxFormMemory); err != nil {
			return nil, fmt.Errorf("parse multipart form: %w", err)
		}
	default:
		if err := c.Request.ParseForm(); err != nil {
			return nil, fmt.Errorf("parse form: %w", err)
		}
	}

	raw := make(map[string]string, len(c.Request.PostForm))
	for k, vs := range c.Request.PostForm {
		if len(vs) > 0 {
			raw[k] = vs[0]
		}
	}
	return raw, nil
}

func readJSONForm(w http.ResponseWriter, r *http.Request) (map[string]string, error) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxFormMemory))
	dec.UseNumber()

	var body map[string]any
	if err := dec.Decode(&body); err != nil {
		return nil, fmt.Errorf("decode json form: %w", err)
	}

	raw := make(map[string]string, len(body))
	for k, v := range body {
		switch v := v.(type) {
		case string:
			raw[k] = v
		case json.Number:
			raw[k] = v.String()
		default:
			return nil, fmt.Errorf("%s: %w", k, errNotFlatForm)
		}
	}
	return raw, nil
}
