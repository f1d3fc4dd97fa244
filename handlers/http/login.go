package httpHandler

import (
	"net/http"

	"fitness-app/entities"
	"fitness-app/usecases"

	"github.com/gin-gonic/gin"
)

type LoginHandler struct {
	useCase *usecases.UserUseCase
}

func NewLoginHandler(useCase *usecases.UserUseCase) *LoginHandler {
	return &LoginHandler{useCase: useCase}
}

// Login handles POST /login. Bad credentials still answer 200: the outcome
// lives in the envelope, not the status code.
func (h *LoginHandler) Login(c *gin.Context) {
	var req entities.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}

	user, err := h.useCase.Authenticate(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Login failed"})
		return
	}
	if user == nil {
		c.JSON(http.StatusOK, entities.LoginResponse{
			Success: false,
			Message: "Invalid email or password",
		})
		return
	}

	c.JSON(http.StatusOK, entities.LoginResponse{
		Success: true,
		Message: "Login successful",
		User:    user,
	})
}
