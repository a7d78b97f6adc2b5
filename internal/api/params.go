package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"
)

// PathID binds a positive integer path parameter such as /funds/:id.
func PathID(c *gin.Context, name string) (uint, error) {
	var id uint
	if err := runtime.BindStyledParameterWithLocation("simple", false, name, runtime.ParamLocationPath, c.Param(name), &id); err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	if id == 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", name)
	}
	return id, nil
}
