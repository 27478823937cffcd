package routes

import (
	"github.com/gin-gonic/gin"

	"furniture-catalog/internal/handlers"
)

// Handlers agrupa los handlers que expone la API.
type Handlers struct {
	Products     *handlers.ProductHandler
	Testimonials *handlers.TestimonialHandler
	Users        *handlers.UserHandler
	Upload       *handlers.UploadHandler
	Stats        *handlers.StatsHandler
	Health       *handlers.HealthHandler
}

// RegisterRoutes monta las rutas públicas y las de administración.
// adminOnly protege toda ruta que modifica datos o expone información interna.
func RegisterRoutes(router *gin.Engine, h Handlers, adminOnly gin.HandlerFunc) {
	router.GET("/health", h.Health.Health)

	api := router.Group("/api")
	{
		api.GET("/products", h.Products.ListProducts)
		api.GET("/products/:id", h.Products.GetProduct)
		api.GET("/testimonials", h.Testimonials.ListTestimonials)
		api.GET("/testimonials/:id", h.Testimonials.GetTestimonial)
	}

	admin := api.Group("", adminOnly)
	{
		admin.POST("/products", h.Products.CreateProduct)
		admin.PUT("/products/:id", h.Products.UpdateProduct)
		admin.PATCH("/products/:id", h.Products.PatchProduct)
		admin.DELETE("/products/:id", h.Products.DeleteProduct)

		admin.POST("/testimonials", h.Testimonials.CreateTestimonial)
		admin.PUT("/testimonials/:id", h.Testimonials.UpdateTestimonial)
		admin.DELETE("/testimonials/:id", h.Testimonials.DeleteTestimonial)

		admin.GET("/users", h.Users.ListUsers)
		admin.POST("/users", h.Users.CreateUser)
		admin.GET("/users/:id", h.Users.GetUser)
		admin.PUT("/users/:id", h.Users.UpdateUser)
		admin.DELETE("/users/:id", h.Users.DeleteUser)

		admin.POST("/upload", h.Upload.UploadImage)
		admin.GET("/admin/stats", h.Stats.GetStats)
	}
}
