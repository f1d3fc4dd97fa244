package httpHandler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fitness-app/db"
	"fitness-app/entities"
	"fitness-app/repositories"
	"fitness-app/usecases"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires the full handler stack against an in-memory database,
// using the same paths the client calls.
func newTestRouter(t *testing.T) (*gin.Engine, db.Database) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database, err := db.Connect(":memory:")
	require.NoError(t, err)

	userRepo := repositories.NewUserDbRepository(database)
	biometricRepo := repositories.NewBiometricDbRepository(database)
	recipeRepo := repositories.NewRecipeDbRepository(database)

	userUseCase := usecases.NewUserUseCase(userRepo, biometricRepo)
	biometricUseCase := usecases.NewBiometricUseCase(biometricRepo)
	recipeUseCase := usecases.NewRecipeUseCase(recipeRepo, userRepo)

	loginHandler := NewLoginHandler(userUseCase)
	userHandler := NewUserHandler(userUseCase)
	biometricHandler := NewBiometricHandler(biometricUseCase)
	recipeHandler := NewRecipeHandler(recipeUseCase)

	router := gin.New()
	router.POST("/login", loginHandler.Login)
	router.GET("/users/:id", userHandler.GetUser)
	router.GET("/users/:id/latest-weight", userHandler.GetLatestWeight)
	router.GET("/biometrics", biometricHandler.GetBiometrics)
	router.POST("/biometrics", biometricHandler.CreateBiometric)
	router.GET("/recipes", recipeHandler.GetRecipes)
	router.POST("/generate-recipe", recipeHandler.GenerateRecipe)

	return router, database
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func getJSON(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func createUser(t *testing.T, database db.Database) *entities.User {
	t.Helper()
	password := "secret"
	user := &entities.User{Name: "Jordan", Email: "jordan@example.com", Password: &password}
	require.NoError(t, repositories.NewUserDbRepository(database).Create(user))
	return user
}

func TestLoginEnvelope(t *testing.T) {
	router, database := newTestRouter(t)
	user := createUser(t, database)

	rec := postJSON(t, router, "/login", entities.LoginRequest{Email: user.Email, Password: "secret"})
	require.Equal(t, http.StatusOK, rec.Code)

	var res entities.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, res.Success)
	require.NotNil(t, res.User)
	assert.Equal(t, user.ID, res.User.ID)

	// Bad credentials still answer 200 with a failure envelope.
	rec = postJSON(t, router, "/login", entities.LoginRequest{Email: user.Email, Password: "nope"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.False(t, res.Success)
	assert.Equal(t, "Invalid email or password", res.Message)
	assert.Nil(t, res.User)
}

func TestGetUserNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := getJSON(t, router, "/users/99")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "User not found", body["detail"])
}

func TestGetUserOmitsPassword(t *testing.T) {
	router, database := newTestRouter(t)
	user := createUser(t, database)

	rec := getJSON(t, router, "/users/1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), user.Email)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestLatestWeightNotFoundShape(t *testing.T) {
	router, database := newTestRouter(t)
	createUser(t, database)

	rec := getJSON(t, router, "/users/1/latest-weight")
	require.Equal(t, http.StatusOK, rec.Code)

	var latest entities.LatestWeight
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &latest))
	assert.False(t, latest.Found)
	assert.Nil(t, latest.Weight)
}

func TestBiometricUpsertRoundtrip(t *testing.T) {
	router, database := newTestRouter(t)
	createUser(t, database)

	weight := 180.0
	rec := postJSON(t, router, "/biometrics", entities.Biometric{UserID: 1, Date: "2024-03-04", Weight: &weight})
	require.Equal(t, http.StatusCreated, rec.Code)

	updated := 179.0
	rec = postJSON(t, router, "/biometrics", entities.Biometric{UserID: 1, Date: "2024-03-04", Weight: &updated})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = getJSON(t, router, "/biometrics?user_id=1")
	require.Equal(t, http.StatusOK, rec.Code)

	var entries []entities.Biometric
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, 179.0, *entries[0].Weight)
}

func TestGenerateRecipeUnknownUserIs404(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := postJSON(t, router, "/generate-recipe", entities.RecipeGenerationRequest{
		UserID:         7,
		UserDirections: "anything",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "User not found", body["detail"])
}

func TestGenerateRecipeEnvelope(t *testing.T) {
	router, database := newTestRouter(t)
	createUser(t, database)

	rec := postJSON(t, router, "/generate-recipe", entities.RecipeGenerationRequest{
		UserID:         1,
		UserDirections: "keto dinner",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var res entities.GenerateRecipeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, res.Success)
	require.NotNil(t, res.Recipe)
	assert.Equal(t, "Keto", *res.Recipe.RecipeType)

	// The generated recipe is browsable afterwards.
	list := getJSON(t, router, "/recipes?recipe_type=Keto")
	require.Equal(t, http.StatusOK, list.Code)
	var recipes []entities.Recipe
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &recipes))
	require.Len(t, recipes, 1)
	assert.Equal(t, res.Recipe.RecipeName, recipes[0].RecipeName)
}
