package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/neuroljus/neurohus/internal/api/handler/v1/response"
	"github.com/neuroljus/neurohus/internal/domain"
)

// Version is reported by the root endpoint.
const Version = "1.0.0"

var mockedProviders = []domain.Provider{
	{
		ID:           1,
		Name:         "Solgården",
		Municipality: "Stockholm",
		Type:         "LSS-boende",
		Rating:       4.5,
		Description:  "Ett tryggt och empatiskt boende för personer med autism",
	},
	{
		ID:           2,
		Name:         "Vindrosen",
		Municipality: "Göteborg",
		Type:         "LSS-boende",
		Rating:       4.8,
		Description:  "Modernt boende med fokus på individuell utveckling",
	},
}

// HandleRoot godoc
// @Summary      Welcome message
// @Tags         root
// @Produce      json
// @Success      200  {object}  response.Root
// @Router       / [get]
func HandleRoot(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, response.Root{
		Message:     "Välkommen till Neuroljus Neurohus! 🏠💛",
		Description: "Sveriges första digitala hus för empati, kunskap och neurodiversitet",
		Version:     Version,
		Status:      "running",
	})
}

// HandleHealthcheck godoc
// @Summary      Health check
// @Tags         root
// @Produce      json
// @Success      200  {object}  response.Health
// @Router       /health [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, response.Health{
		Status:  "healthy",
		Message: "Neuroljus Neurohus API är igång och redo att hjälpa! 💪",
	})
}

// HandleListProviders godoc
// @Summary      List care providers
// @Description  Static demo listing of LSS providers.
// @Tags         root
// @Produce      json
// @Success      200  {object}  response.Providers
// @Router       /api/verksamheter [get]
func HandleListProviders(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, response.Providers{Providers: mockedProviders})
}
