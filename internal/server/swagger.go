package server

import (
	"eaglegym/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupSwagger serves the API docs. host overrides the generated host so
// "Try it out" targets the deployed address.
func SetupSwagger(r *gin.Engine, host string) {
	if host != "" {
		docs.SwaggerInfo.Host = host
	}
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.DocExpansion("list"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
