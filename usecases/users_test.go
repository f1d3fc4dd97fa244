package usecases

import (
	"testing"

	"fitness-app/entities"
	"fitness-app/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserUseCase(t *testing.T) (*UserUseCase, repositories.UserRepository, repositories.BiometricRepository) {
	t.Helper()
	database := newTestDB(t)
	userRepo := repositories.NewUserDbRepository(database)
	biometricRepo := repositories.NewBiometricDbRepository(database)
	return NewUserUseCase(userRepo, biometricRepo), userRepo, biometricRepo
}

func TestAuthenticate(t *testing.T) {
	uc, userRepo, _ := newUserUseCase(t)

	user := &entities.User{Name: "Jordan", Email: "jordan@example.com", Password: strPtr("secret")}
	require.NoError(t, userRepo.Create(user))

	summary, err := uc.Authenticate("jordan@example.com", "secret")
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, user.ID, summary.ID)
	assert.Equal(t, "Jordan", summary.Name)

	// Bad credentials are an envelope outcome, not an error.
	summary, err = uc.Authenticate("jordan@example.com", "wrong")
	require.NoError(t, err)
	assert.Nil(t, summary)

	summary, err = uc.Authenticate("nobody@example.com", "secret")
	require.NoError(t, err)
	assert.Nil(t, summary)
}

func TestLatestWeightWithoutEntries(t *testing.T) {
	uc, userRepo, _ := newUserUseCase(t)

	user := &entities.User{Name: "Jordan", Email: "jordan@example.com"}
	require.NoError(t, userRepo.Create(user))

	latest, err := uc.LatestWeight(user.ID)
	require.NoError(t, err)
	assert.False(t, latest.Found)
	assert.Nil(t, latest.Weight)
	assert.Nil(t, latest.WeightKg)
	assert.Nil(t, latest.Date)
}

func TestLatestWeightPicksNewestWithWeight(t *testing.T) {
	uc, userRepo, biometricRepo := newUserUseCase(t)

	user := &entities.User{Name: "Jordan", Email: "jordan@example.com"}
	require.NoError(t, userRepo.Create(user))

	require.NoError(t, biometricRepo.Create(&entities.Biometric{
		UserID: user.ID, Date: "2024-03-01", Weight: floatPtr(182.5), WeightUnits: strPtr("lbs"),
	}))
	require.NoError(t, biometricRepo.Create(&entities.Biometric{
		UserID: user.ID, Date: "2024-03-04", Weight: floatPtr(180), WeightUnits: strPtr("lbs"),
	}))
	// Newest entry has no weight and must be skipped.
	require.NoError(t, biometricRepo.Create(&entities.Biometric{
		UserID: user.ID, Date: "2024-03-05", Notes: strPtr("rest day"),
	}))

	latest, err := uc.LatestWeight(user.ID)
	require.NoError(t, err)
	require.True(t, latest.Found)
	assert.Equal(t, 180.0, *latest.Weight)
	assert.Equal(t, "lbs", *latest.WeightUnits)
	assert.Equal(t, "2024-03-04", *latest.Date)
	assert.Equal(t, 81.65, *latest.WeightKg)
}

func TestToKilograms(t *testing.T) {
	assert.Equal(t, 81.65, toKilograms(180, "lbs"))
	assert.Equal(t, 81.65, toKilograms(180, "LBS"))
	assert.Equal(t, 81.65, toKilograms(180, "pounds"))
	assert.Equal(t, 80.0, toKilograms(80, "kg"))
}
