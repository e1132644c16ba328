package services_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"collabhub_backend/database"
	"collabhub_backend/internal/models"
	"collabhub_backend/internal/repositories"
	"collabhub_backend/internal/services"
	"collabhub_backend/internal/services/dto"
	"collabhub_backend/pkg/apperrors"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "collabhub_test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func newApplicationService() *services.ApplicationService {
	return services.NewApplicationService(
		repositories.NewApplicationRepository(),
		repositories.NewRequirementRepository(),
	)
}

func createUser(t *testing.T, db *gorm.DB, role models.UserRole, first, last string) *models.User {
	t.Helper()

	user := &models.User{
		Email:        fmt.Sprintf("%s@test.local", uuid.NewString()),
		PasswordHash: "irrelevant",
		FirstName:    first,
		LastName:     last,
		Role:         role,
		Status:       models.UserStatusActive,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createBrandProfile(t *testing.T, db *gorm.DB, userID, companyName string) {
	t.Helper()
	require.NoError(t, db.Create(&models.BrandProfile{
		UserID:      userID,
		CompanyName: companyName,
	}).Error)
}

func createCreatorProfile(t *testing.T, db *gorm.DB, userID, displayName string) {
	t.Helper()
	require.NoError(t, db.Create(&models.CreatorProfile{
		UserID:      userID,
		DisplayName: displayName,
	}).Error)
}

func createRequirement(t *testing.T, db *gorm.DB, brandID string, status models.RequirementStatus) *models.Requirement {
	t.Helper()

	req := &models.Requirement{
		BrandID: brandID,
		Title:   "Beauty campaign, 10k+ followers",
		Status:  status,
	}
	require.NoError(t, db.Create(req).Error)
	return req
}

func apply(t *testing.T, db *gorm.DB, svc *services.ApplicationService, creatorID, requirementID string) *dto.ApplicationResponse {
	t.Helper()

	app, err := svc.Apply(db, &dto.CreateApplicationRequest{
		CreatorID:     creatorID,
		RequirementID: requirementID,
	})
	require.NoError(t, err)
	return app
}

func assertAppError(t *testing.T, err error, code apperrors.ErrorCode, httpCode int) {
	t.Helper()

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
	assert.Equal(t, httpCode, appErr.HTTPCode)
}

func TestApply_CreatesPendingApplication(t *testing.T) {
	db := setupDB(t)
	svc := newApplicationService()

	brand := createUser(t, db, models.UserRoleBrand, "Bea", "Brand")
	creator := createUser(t, db, models.UserRoleCreator, "Cleo", "Creator")
	req := createRequirement(t, db, brand.ID, models.RequirementStatusOpen)

	letter := "I would love to work on this"
	rate := 1500
	app, err := svc.Apply(db, &dto.CreateApplicationRequest{
		CreatorID:     creator.ID,
		RequirementID: req.ID,
		CoverLetter:   &letter,
		ProposedRate:  &rate,
	})
	require.NoError(t, err)

	assert.Equal(t, models.ApplicationStatusPending, app.Status)
	assert.Equal(t, creator.ID, app.CreatorID)
	assert.Equal(t, req.ID, app.RequirementID)
	require.NotNil(t, app.CoverLetter)
	assert.Equal(t, letter, *app.CoverLetter)
	require.NotNil(t, app.ProposedRate)
	assert.Equal(t, rate, *app.ProposedRate)
}

func TestApply_RequirementMissing(t *testing.T) {
	db := setupDB(t)
	svc := newApplicationService()

	creator := createUser(t, db, models.UserRoleCreator, "Cleo", "Creator")

	_, err := svc.Apply(db, &dto.CreateApplicationRequest{
		CreatorID:     creator.ID,
		RequirementID: uuid.NewString(),
	})
	assertAppError(t, err, apperrors.CodeNotFound, 404)
}

func TestApply_RequirementNotOpen(t *testing.T) {
	db := setupDB(t)
	svc := newApplicationService()

	brand := createUser(t, db, models.UserRoleBrand, "Bea", "Brand")
	creator := createUser(t, db, models.UserRoleCreator, "Cleo", "Creator")

	for _, status := range []models.RequirementStatus{
		models.RequirementStatusClosed,
		models.RequirementStatusPaused,
	} {
		req := createRequirement(t, db, brand.ID, status)
		_, err := svc.Apply(db, &dto.CreateApplicationRequest{
			CreatorID:     creator.ID,
			RequirementID: req.ID,
		})
		assertAppError(t, err, apperrors.CodeInvalidStatus, 400)
	}
}

func TestApply_DuplicateRejected(t *testing.T) {
	db := setupDB(t)
	svc := newApplicationService()

	brand := createUser(t, db, models.UserRoleBrand, "Bea", "Brand")
	creator := createUser(t, db, models.UserRoleCreator, "Cleo", "Creator")
	req := createRequirement(t, db, brand.ID, models.RequirementStatusOpen)

	apply(t, db, svc, creator.ID, req.ID)

	_, err := svc.Apply(db, &dto.CreateApplicationRequest{
		CreatorID:     creator.ID,
		RequirementID: req.ID,
	})
	assertAppError(t, err, apperrors.CodeConflict, 409)

	var count int64
	require.NoError(t, db.Model(&models.Application{}).
		Where("creator_id = ? AND requirement_id = ?", creator.ID, req.ID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

// Re-application stays blocked even after the first bid reached a
// terminal status: the duplicate check is intentionally status-blind.
func TestApply_ReapplicationAfterWithdrawalBlocked(t *testing.T) {
	db := setupDB(t)
	svc := newApplicationService()

	brand := createUser(t, db, models.UserRoleBrand, "Bea", "Brand")
	creator := createUser(t, db, models.UserRoleCreator, "Cleo", "Creator")
	req := createRequirement(t, db, brand.ID, models.RequirementStatusOpen)

	app := apply(t, db, svc, creator.ID, req.ID)

	_, err := svc.UpdateStatus(db, app.ID, creator.ID, models.UserRoleCreator, models.ApplicationStatusWithdrawn)
	require.NoError(t, err)

	_, err = svc.Apply(db, &dto.CreateApplicationRequest{
		CreatorID:     creator.ID,
		RequirementID: req.ID,
	})
	assertAppError(t, err, apperrors.CodeConflict, 409)
}

func TestUpdateStatus_BrandAcceptsAndRejects(t *testing.T) {
	db := setupDB(t)
	svc := newApplicationService()

	brand := createUser(t, db, models.UserRoleBrand, "Bea", "Brand")
	creatorA := createUser(t, db, models.UserRoleCreator, "Ada", "A")
	creatorB := createUser(t, db, models.UserRoleCreator, "Ben", "B")
	req := createRequirement(t, db, brand.ID, models.RequirementStatusOpen)

	appA := apply(t, db, svc, creatorA.ID, req.ID)
	appB := apply(t, db, svc, creatorB.ID, req.ID)

	accepted, err := svc.UpdateStatus(db, appA.ID, brand.ID, models.UserRoleBrand, models.ApplicationStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusAccepted, accepted.Status)

	rejected, err := svc.UpdateStatus(db, appB.ID, brand.ID, models.UserRoleBrand, models.ApplicationStatusRejected)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusRejected, rejected.Status)
}

func TestUpdateStatus_RoleGating(t *testing.T) {
	db := setupDB(t)
	svc := newApplicationService()

	brand := createUser(t, db, models.UserRoleBrand, "Bea", "Brand")
	creator := createUser(t, db, models.UserRoleCreator, "Cleo", "Creator")
	req := createRequirement(t, db, brand.ID, models.RequirementStatusOpen)
	app := apply(t, db, svc, creator.ID, req.ID)

	// A creator can never accept or reject.
	_, err := svc.UpdateStatus(db, app.ID, creator.ID, models.UserRoleCreator, models.ApplicationStatusAccepted)
	assertAppError(t, err, apperrors.CodeInvalidOperation, 400)
	_, err = svc.UpdateStatus(db, app.ID, creator.ID, models.UserRoleCreator, models.ApplicationStatusRejected)
	assertAppError(t, err, apperrors.CodeInvalidOperation, 400)

	// A brand can never withdraw.
	_, err = svc.UpdateStatus(db, app.ID, brand.ID, models.UserRoleBrand, models.ApplicationStatusWithdrawn)
	assertAppError(t, err, apperrors.CodeInvalidOperation, 400)

	// No other role may transition at all.
	admin := createUser(t, db, models.UserRoleAdmin, "Adm", "In")
	_, err = svc.UpdateStatus(db, app.ID, admin.ID, models.UserRoleAdmin, models.ApplicationStatusAccepted)
	assertAppError(t, err, apperrors.CodeForbidden, 403)
}

func TestUpdateStatus_OwnershipChecks(t *testing.T) {
	db := setupDB(t)
	svc := newApplicationService()

	brand := createUser(t, db, models.UserRoleBrand, "Bea", "Brand")
	otherBrand := createUser(t, db, models.UserRoleBrand, "Eve", "Other")
	creator := createUser(t, db, models.UserRoleCreator, "Cleo", "Creator")
	otherCreator := createUser(t, db, models.UserRoleCreator, "Mal", "Other")
	req := createRequirement(t, db, brand.ID, models.RequirementStatusOpen)
	app := apply(t, db, svc, creator.ID, req.ID)

	_, err := svc.UpdateStatus(db, app.ID, otherCreator.ID, models.UserRoleCreator, models.ApplicationStatusWithdrawn)
	assertAppError(t, err, apperrors.CodeForbidden, 403)

	_, err = svc.UpdateStatus(db, app.ID, otherBrand.ID, models.UserRoleBrand, models.ApplicationStatusAccepted)
	assertAppError(t, err, apperrors.CodeForbidden, 403)
}

func TestUpdateStatus_TerminalClosure(t *testing.T) {
	db := setupDB(t)
	svc := newApplicationService()

	brand := createUser(t, db, models.UserRoleBrand, "Bea", "Brand")
	creator := createUser(t, db, models.UserRoleCreator, "Cleo", "Creator")
	req := createRequirement(t, db, brand.ID, models.RequirementStatusOpen)
	app := apply(t, db, svc, creator.ID, req.ID)

	_, err := svc.UpdateStatus(db, app.ID, brand.ID, models.UserRoleBrand, models.ApplicationStatusAccepted)
	require.NoError(t, err)

	// No caller can move the application anywhere once it is terminal.
	_, err = svc.UpdateStatus(db, app.ID, brand.ID, models.UserRoleBrand, models.ApplicationStatusRejected)
	assertAppError(t, err, apperrors.CodeInvalidOperation, 400)
	_, err = svc.UpdateStatus(db, app.ID, creator.ID, models.UserRoleCreator, models.ApplicationStatusWithdrawn)
	assertAppError(t, err, apperrors.CodeInvalidOperation, 400)

	var stored models.Application
	require.NoError(t, db.First(&stored, "id = ?", app.ID).Error)
	assert.Equal(t, models.ApplicationStatusAccepted, stored.Status)
}

func TestUpdateStatus_WithdrawTwiceFails(t *testing.T) {
	db := setupDB(t)
	svc := newApplicationService()

	brand := createUser(t, db, models.UserRoleBrand, "Bea", "Brand")
	creator := createUser(t, db, models.UserRoleCreator, "Cleo", "Creator")
	req := createRequirement(t, db, brand.ID, models.RequirementStatusOpen)
	app := apply(t, db, svc, creator.ID, req.ID)

	withdrawn, err := svc.UpdateStatus(db, app.ID, creator.ID, models.UserRoleCreator, models.ApplicationStatusWithdrawn)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusWithdrawn, withdrawn.Status)

	_, err = svc.UpdateStatus(db, app.ID, creator.ID, models.UserRoleCreator, models.ApplicationStatusWithdrawn)
	assertAppError(t, err, apperrors.CodeInvalidOperation, 400)
}

func TestUpdateStatus_ApplicationMissing(t *testing.T) {
	db := setupDB(t)
	svc := newApplicationService()

	brand := createUser(t, db, models.UserRoleBrand, "Bea", "Brand")

	_, err := svc.UpdateStatus(db, uuid.NewString(), brand.ID, models.UserRoleBrand, models.ApplicationStatusAccepted)
	assertAppError(t, err, apperrors.CodeNotFound, 404)
}

func TestHasAcceptedRelationship_Symmetric(t *testing.T) {
	db := setupDB(t)
	svc := newApplicationService()

	brand := createUser(t, db, models.UserRoleBrand, "Bea", "Brand")
	creator := createUser(t, db, models.UserRoleCreator, "Cleo", "Creator")
	stranger := createUser(t, db, models.UserRoleCreator, "Sam", "Stranger")
	req := createRequirement(t, db, brand.ID, models.RequirementStatusOpen)
	app := apply(t, db, svc, creator.ID, req.ID)

	// Pending applications do not create a relationship.
	related, err := svc.HasAcceptedRelationship(db, creator.ID, brand.ID)
	require.NoError(t, err)
	assert.False(t, related)

	_, err = svc.UpdateStatus(db, app.ID, brand.ID, models.UserRoleBrand, models.ApplicationStatusAccepted)
	require.NoError(t, err)

	forward, err := svc.HasAcceptedRelationship(db, creator.ID, brand.ID)
	require.NoError(t, err)
	backward, err := svc.HasAcceptedRelationship(db, brand.ID, creator.ID)
	require.NoError(t, err)
	assert.True(t, forward)
	assert.Equal(t, forward, backward)

	related, err = svc.HasAcceptedRelationship(db, stranger.ID, brand.ID)
	require.NoError(t, err)
	assert.False(t, related)
}

func TestListAcceptedPartners_DedupesByPartner(t *testing.T) {
	db := setupDB(t)
	svc := newApplicationService()

	brand := createUser(t, db, models.UserRoleBrand, "Bea", "Brand")
	createBrandProfile(t, db, brand.ID, "Glow Cosmetics")
	creator := createUser(t, db, models.UserRoleCreator, "Cleo", "Creator")

	// Two accepted applications against two requirements of the same brand.
	for i := 0; i < 2; i++ {
		req := createRequirement(t, db, brand.ID, models.RequirementStatusOpen)
		app := apply(t, db, svc, creator.ID, req.ID)
		_, err := svc.UpdateStatus(db, app.ID, brand.ID, models.UserRoleBrand, models.ApplicationStatusAccepted)
		require.NoError(t, err)
	}

	partners, err := svc.ListAcceptedPartners(db, creator.ID, models.UserRoleCreator)
	require.NoError(t, err)
	require.Len(t, partners, 1)
	assert.Equal(t, brand.ID, partners[0].UserID)
	assert.Equal(t, "Glow Cosmetics", partners[0].Name)
}

func TestListAcceptedPartners_BrandSideNameFallback(t *testing.T) {
	db := setupDB(t)
	svc := newApplicationService()

	brand := createUser(t, db, models.UserRoleBrand, "Bea", "Brand")
	named := createUser(t, db, models.UserRoleCreator, "Ada", "Lovelace")
	createCreatorProfile(t, db, named.ID, "ada.codes")
	unnamed := createUser(t, db, models.UserRoleCreator, "Grace", "Hopper")
	anonymous := createUser(t, db, models.UserRoleCreator, "", "")

	for _, creator := range []*models.User{named, unnamed, anonymous} {
		req := createRequirement(t, db, brand.ID, models.RequirementStatusOpen)
		app := apply(t, db, svc, creator.ID, req.ID)
		_, err := svc.UpdateStatus(db, app.ID, brand.ID, models.UserRoleBrand, models.ApplicationStatusAccepted)
		require.NoError(t, err)
	}

	partners, err := svc.ListAcceptedPartners(db, brand.ID, models.UserRoleBrand)
	require.NoError(t, err)
	require.Len(t, partners, 3)

	// Treat the result as a set keyed by partner id.
	names := make(map[string]string, len(partners))
	for _, p := range partners {
		names[p.UserID] = p.Name
	}
	assert.Equal(t, "ada.codes", names[named.ID])
	assert.Equal(t, "Grace Hopper", names[unnamed.ID])
	assert.Equal(t, anonymous.ID, names[anonymous.ID])
}

func TestListMine_JoinsRequirementFields(t *testing.T) {
	db := setupDB(t)
	svc := newApplicationService()

	brand := createUser(t, db, models.UserRoleBrand, "Bea", "Brand")
	createBrandProfile(t, db, brand.ID, "Glow Cosmetics")
	creator := createUser(t, db, models.UserRoleCreator, "Cleo", "Creator")
	req := createRequirement(t, db, brand.ID, models.RequirementStatusOpen)
	apply(t, db, svc, creator.ID, req.ID)

	items, err := svc.ListMine(db, creator.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, req.Title, items[0].RequirementTitle)
	assert.Equal(t, brand.ID, items[0].BrandID)
	assert.Equal(t, "Glow Cosmetics", items[0].BrandName)
}

func TestListForRequirement_OwnershipEnforced(t *testing.T) {
	db := setupDB(t)
	svc := newApplicationService()

	brand := createUser(t, db, models.UserRoleBrand, "Bea", "Brand")
	otherBrand := createUser(t, db, models.UserRoleBrand, "Eve", "Other")
	creator := createUser(t, db, models.UserRoleCreator, "Cleo", "Creator")
	createCreatorProfile(t, db, creator.ID, "cleo.creates")
	req := createRequirement(t, db, brand.ID, models.RequirementStatusOpen)
	apply(t, db, svc, creator.ID, req.ID)

	_, err := svc.ListForRequirement(db, req.ID, otherBrand.ID)
	assertAppError(t, err, apperrors.CodeForbidden, 403)

	items, err := svc.ListForRequirement(db, req.ID, brand.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, creator.ID, items[0].CreatorID)
	assert.Equal(t, "cleo.creates", items[0].CreatorDisplayName)
}
