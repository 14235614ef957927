package web

import (
	"net/http"

	"bitbucket.org/crgw/booking-quotes/internal/tools/middleware"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/gin-gonic/gin"
)

// OpenapiValidator checks requests against the API description. Bodies are
// left to the handlers, XML documents are validated by the quote pipeline.
// Routes missing from the description (pprof) pass through.
func OpenapiValidator(content []byte) (gin.HandlerFunc, error) {
	doc, err := openapi3.NewLoader().LoadFromData(content)
	if err != nil {
		return nil, err
	}

	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		ExcludeRequestBody: true,
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(c *gin.Context) {
		route, pathParams, err := router.FindRoute(c.Request)
		if err != nil {
			return
		}

		err = openapi3filter.ValidateRequest(c.Request.Context(), &openapi3filter.RequestValidationInput{
			Request:    c.Request,
			PathParams: pathParams,
			Route:      route,
			Options:    options,
		})
		if err != nil {
			middleware.HandleError(c, http.StatusBadRequest, "Request does not match the API description", err)
			return
		}
	}, nil
}
