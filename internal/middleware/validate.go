package middleware

import (
	"io"
	"net/http"

	"catalogo/internal/apierror"
	"catalogo/internal/validation"

	"github.com/gin-gonic/gin"
)

const InputKey = "validated_input"

// MaxBodyBytes caps request bodies; larger payloads are rejected as malformed.
const MaxBodyBytes = 100 << 10

// Validate decodes the request once, runs schema against it and rejects the
// request with 400 {"errors": [...]} before the handler runs. On success the
// Input is stored in the context; handlers read it with GetInput.
func Validate(schema validation.Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
		in, ok := readInput(c)
		if !ok {
			return
		}
		if errs := schema.Validate(in); len(errs) > 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, apierror.NewValidation(errs))
			return
		}
		c.Set(InputKey, in)
		c.Next()
	}
}

// GetInput returns the Input stored by Validate, or decodes the request when
// the route has no schema.
func GetInput(c *gin.Context) (validation.Input, bool) {
	if v, ok := c.Get(InputKey); ok {
		if in, ok := v.(validation.Input); ok {
			return in, true
		}
	}
	return readInput(c)
}

func readInput(c *gin.Context) (validation.Input, bool) {
	params := make(map[string]string, len(c.Params))
	for _, p := range c.Params {
		params[p.Key] = p.Value
	}

	var raw []byte
	if c.Request.Body != nil {
		var err error
		raw, err = io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, apierror.NewMessage(apierror.MsgMalformedJSON))
			return validation.Input{}, false
		}
	}
	body, err := validation.DecodeBody(raw)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, apierror.NewMessage(apierror.MsgMalformedJSON))
		return validation.Input{}, false
	}
	return validation.Input{Params: params, Body: body}, true
}
