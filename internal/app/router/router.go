package router

import (
	"time"

	"github.com/gin-gonic/gin"

	usershandler "user_service/internal/feature/users/transport/handler"
	"user_service/internal/platform/http/handler"
	"user_service/internal/platform/http/middleware"
)

// NewRouter builds the gin engine with the full route table. The
// timeout middleware bounds every request; gorm receives the request
// context, so a fired deadline also interrupts the database work.
func NewRouter(profile *usershandler.ProfileHandler, address *usershandler.AddressHandler,
	requestTimeout time.Duration) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.Timeout(requestTimeout))

	// Liveness probe
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)

	up := r.Group("/userProfile")
	{
		up.GET("/getAllUsers", profile.GetAll)
		up.POST("/createUser", profile.Create)
		up.GET("/getUser/:id", profile.Get)
		up.PUT("/editUser/:id", profile.Edit)
		up.DELETE("/removeUserProfile/:id", profile.Remove)
	}

	ua := r.Group("/userAddress")
	{
		ua.GET("/getAllUsers", address.GetAll)
		ua.POST("/createUserAddress", address.Create)
		ua.GET("/getUser/:id", address.Get)
		ua.PUT("/editUser/:id", address.Edit)
		ua.DELETE("/removeUserAddress/:id", address.Remove)
	}

	return r
}
