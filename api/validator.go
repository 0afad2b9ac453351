package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/gin-gonic/gin"

	"bidhouse/api/openapi"
)

// newRequestValidator 依內嵌的 OpenAPI 文件檢查請求參數與 body
// 身分與角色標頭只在 handler 內判斷，不經過 security scheme
func newRequestValidator(swagger *openapi3.T) (openapi.MiddlewareFunc, error) {
	// 不限定 host，部署在任何位址都能比對路由
	swagger.Servers = nil
	router, err := gorillamux.NewRouter(swagger)
	if err != nil {
		return nil, fmt.Errorf("fail to build openapi router, err=%w", err)
	}
	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(c *gin.Context) {
		route, pathParams, err := router.FindRoute(c.Request)
		if err != nil {
			if errors.Is(err, routers.ErrPathNotFound) || errors.Is(err, routers.ErrMethodNotAllowed) {
				return
			}
			c.AbortWithStatusJSON(http.StatusBadRequest, openapi.Error{Message: err.Error()})
			return
		}
		input := &openapi3filter.RequestValidationInput{
			Request:    c.Request,
			PathParams: pathParams,
			Route:      route,
			Options:    options,
		}
		if err := openapi3filter.ValidateRequest(c.Request.Context(), input); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, openapi.Error{Message: validationMessage(err)})
			return
		}
	}, nil
}

// validationMessage 只保留第一行，避免把整份 schema 回給呼叫端
func validationMessage(err error) string {
	var requestErr *openapi3filter.RequestError
	if errors.As(err, &requestErr) {
		if requestErr.Parameter != nil {
			return fmt.Sprintf("invalid parameter %q", requestErr.Parameter.Name)
		}
		var schemaErr *openapi3.SchemaError
		if errors.As(requestErr.Err, &schemaErr) {
			return fmt.Sprintf("invalid request body: %s", schemaErr.Reason)
		}
		if requestErr.Reason != "" {
			return requestErr.Reason
		}
	}
	return "invalid request"
}
