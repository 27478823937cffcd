package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
)

// StatsHandler resume el contenido del catálogo para el panel de administración.
type StatsHandler struct {
	products     Counter
	testimonials Counter
	users        Counter
	log          zerolog.Logger
}

func NewStatsHandler(products, testimonials, users Counter, log zerolog.Logger) *StatsHandler {
	return &StatsHandler{products: products, testimonials: testimonials, users: users, log: log}
}

func (h *StatsHandler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()

	counts := []struct {
		key    string
		source Counter
		filter bson.M
	}{
		{"totalProducts", h.products, bson.M{}},
		{"featuredProducts", h.products, bson.M{"featured": true}},
		{"totalTestimonials", h.testimonials, bson.M{}},
		{"totalUsers", h.users, bson.M{}},
	}

	out := gin.H{}
	for _, cnt := range counts {
		n, err := cnt.source.Count(ctx, cnt.filter)
		if err != nil {
			respondError(c, h.log, "Stats", err)
			return
		}
		out[cnt.key] = n
	}

	c.JSON(http.StatusOK, out)
}
