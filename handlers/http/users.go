package httpHandler

import (
	"net/http"
	"strconv"

	"fitness-app/usecases"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	useCase *usecases.UserUseCase
}

func NewUserHandler(useCase *usecases.UserUseCase) *UserHandler {
	return &UserHandler{useCase: useCase}
}

// GetUser handles GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid user id"})
		return
	}

	user, err := h.useCase.GetUser(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
		return
	}

	user.Password = nil
	c.JSON(http.StatusOK, user)
}

// GetLatestWeight handles GET /users/:id/latest-weight. A user without any
// weight entry is not an error; the response says found=false.
func (h *UserHandler) GetLatestWeight(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid user id"})
		return
	}

	latest, err := h.useCase.LatestWeight(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to retrieve latest weight"})
		return
	}

	c.JSON(http.StatusOK, latest)
}
