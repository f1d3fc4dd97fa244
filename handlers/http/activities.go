package httpHandler

import (
	"net/http"
	"strconv"

	"fitness-app/entities"
	"fitness-app/usecases"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	useCase *usecases.ActivityUseCase
}

func NewActivityHandler(useCase *usecases.ActivityUseCase) *ActivityHandler {
	return &ActivityHandler{useCase: useCase}
}

// GetActivities handles GET /activities?user_id=
func (h *ActivityHandler) GetActivities(c *gin.Context) {
	userID := 0
	if raw := c.Query("user_id"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid user_id"})
			return
		}
		userID = parsed
	}

	activities, err := h.useCase.ListActivities(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to retrieve activities"})
		return
	}

	c.JSON(http.StatusOK, activities)
}

// CreateActivity handles POST /activities
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	var activity entities.Activity
	if err := c.ShouldBindJSON(&activity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}

	if err := h.useCase.CreateActivity(&activity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, activity)
}
