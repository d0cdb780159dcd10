package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/miraihq/mirai-backend/internal/app/models"
	"github.com/miraihq/mirai-backend/internal/app/models/dto"
	"github.com/miraihq/mirai-backend/internal/pkg/apperrors"
)

func strptr(s string) *string { return &s }

func newUserServiceForTest(t *testing.T) (*UserService, int64) {
	t.Helper()
	repo := newFakeUserRepo()
	id, err := repo.Create(context.Background(), &models.User{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "hashed",
		UserType: "student",
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return NewUserService(repo, zerolog.Nop()), id
}

func TestGetProfile(t *testing.T) {
	svc, id := newUserServiceForTest(t)

	user, err := svc.GetProfile(context.Background(), id)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if user.Name != "Asha" {
		t.Fatalf("wrong profile: %+v", user)
	}

	if _, err := svc.GetProfile(context.Background(), 9999); !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdateProfileRejectsEmptyUpdate(t *testing.T) {
	svc, id := newUserServiceForTest(t)

	_, err := svc.UpdateProfile(context.Background(), id, &dto.UpdateProfileRequest{})
	if !errors.Is(err, apperrors.ErrNoFieldsToUpdate) {
		t.Fatalf("expected ErrNoFieldsToUpdate, got %v", err)
	}
}

func TestUpdateProfileValidatesFields(t *testing.T) {
	svc, id := newUserServiceForTest(t)

	_, err := svc.UpdateProfile(context.Background(), id, &dto.UpdateProfileRequest{
		Name:     strptr("X"),
		UserType: strptr("wizard"),
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation failure, got %v", err)
	}
	var verrs *apperrors.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs.Fields) != 2 {
		t.Fatalf("expected 2 field errors, got %v", err)
	}
}

func TestUpdateProfileApplies(t *testing.T) {
	svc, id := newUserServiceForTest(t)

	user, err := svc.UpdateProfile(context.Background(), id, &dto.UpdateProfileRequest{
		Name:        strptr("Asha K"),
		CollegeName: strptr("IIT Delhi"),
		UserType:    strptr("alumni"),
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if user.Name != "Asha K" || user.UserType != "alumni" {
		t.Fatalf("update not applied: %+v", user)
	}
	if user.CollegeName == nil || *user.CollegeName != "IIT Delhi" {
		t.Fatalf("college name not applied: %+v", user)
	}
	if user.Course != nil {
		t.Fatal("untouched field was modified")
	}
}
