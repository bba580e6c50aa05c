package api

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"institute-registry-backend/config"
	"institute-registry-backend/internal/mw"
	"institute-registry-backend/internal/validate"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(h *Handler, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// Plug the custom field rules into gin's validation pipeline.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := validate.Register(v); err != nil {
			log.Printf("Warning: could not register custom validations: %v", err)
		}
	}

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.Server.RateLimitPerSec), cfg.Server.RateLimitBurst)

	cacheStore := cache.New(cfg.Cache.TTL, 2*cfg.Cache.TTL)
	caching := mw.Cache(cacheStore, cfg.Cache.TTL)

	api := r.Group("/api/v1")
	api.Use(rateLimiter, caching)
	{
		institutes := api.Group("/institutes")
		{
			institutes.GET("", h.ListInstitutes)
			institutes.GET("/:id", h.GetInstitute)
			institutes.GET("/uuid/:uuid", h.GetInstituteByUUID)
			institutes.POST("", h.CreateInstitute)
			institutes.PUT("/:id", h.UpdateInstitute)
			institutes.PATCH("/:id", h.UpdateInstitute)
			institutes.DELETE("/:id", h.DeleteInstitute)
		}

		students := api.Group("/students")
		{
			students.GET("", h.ListStudents)
			students.GET("/:id", h.GetStudent)
			students.GET("/code/:code", h.GetStudentByCode)
			students.POST("", h.CreateStudent)
			students.PUT("/:id", h.UpdateStudent)
			students.PATCH("/:id", h.UpdateStudent)
			students.DELETE("/:id", h.DeleteStudent)
		}

		names := api.Group("/names")
		{
			names.GET("", h.ListNames)
			names.GET("/:id", h.GetName)
			names.GET("/code/:code", h.GetNameByCode)
			names.POST("", h.CreateName)
			names.PUT("/:id", h.UpdateName)
			names.PATCH("/:id", h.UpdateName)
			names.DELETE("/:id", h.DeleteName)
		}
	}

	return r
}
