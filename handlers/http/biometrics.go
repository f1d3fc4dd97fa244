package httpHandler

import (
	"net/http"
	"strconv"

	"fitness-app/entities"
	"fitness-app/usecases"

	"github.com/gin-gonic/gin"
)

type BiometricHandler struct {
	useCase *usecases.BiometricUseCase
}

func NewBiometricHandler(useCase *usecases.BiometricUseCase) *BiometricHandler {
	return &BiometricHandler{useCase: useCase}
}

// GetBiometrics handles GET /biometrics?user_id=
func (h *BiometricHandler) GetBiometrics(c *gin.Context) {
	userID := 0
	if raw := c.Query("user_id"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid user_id"})
			return
		}
		userID = parsed
	}

	biometrics, err := h.useCase.ListBiometrics(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to retrieve biometrics"})
		return
	}

	c.JSON(http.StatusOK, biometrics)
}

// CreateBiometric handles POST /biometrics. One row per user per date:
// posting an existing date updates it. The persisted row is returned either
// way.
func (h *BiometricHandler) CreateBiometric(c *gin.Context) {
	var biometric entities.Biometric
	if err := c.ShouldBindJSON(&biometric); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}

	saved, err := h.useCase.SaveBiometric(&biometric)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, saved)
}
