package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/miraihq/mirai-backend/internal/app/models/dto"
	"github.com/miraihq/mirai-backend/internal/pkg/apperrors"
)

func newCourseServiceForTest() (*CourseService, *fakeCourseRepo) {
	repo := newFakeCourseRepo()
	return NewCourseService(repo, newFakeEnrollmentRepo(), zerolog.Nop()), repo
}

func validCourseRequest() *dto.CreateCourseRequest {
	return &dto.CreateCourseRequest{
		Title:       "Intro to Go",
		Description: "A hands-on introduction to Go for students.",
		Level:       "Beginner",
		Duration:    "6 weeks",
		Tags:        []string{"go", "backend"},
	}
}

func TestCreateCourse(t *testing.T) {
	svc, repo := newCourseServiceForTest()

	id, err := svc.Create(context.Background(), 1, validCourseRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	course, err := repo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if course.CreatorID == nil || *course.CreatorID != 1 {
		t.Fatalf("creator not recorded: %+v", course)
	}
	if len(course.Tags) != 2 || course.Tags[0] != "go" {
		t.Fatalf("tags not preserved: %v", course.Tags)
	}
}

func TestCreateCourseCollectsAllFieldErrors(t *testing.T) {
	svc, _ := newCourseServiceForTest()

	_, err := svc.Create(context.Background(), 1, &dto.CreateCourseRequest{
		Title:       "Go",
		Description: "too short",
		Level:       "expert",
		Duration:    "  ",
	})
	var verrs *apperrors.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	if len(verrs.Fields) != 4 {
		t.Fatalf("expected 4 field errors, got %d: %v", len(verrs.Fields), verrs.Fields)
	}
}

func TestListAllNewestFirst(t *testing.T) {
	svc, _ := newCourseServiceForTest()
	ctx := context.Background()

	first := validCourseRequest()
	first.Title = "First Course"
	second := validCourseRequest()
	second.Title = "Second Course"

	if _, err := svc.Create(ctx, 1, first); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(ctx, 1, second); err != nil {
		t.Fatalf("Create: %v", err)
	}

	courses, err := svc.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(courses) != 2 || courses[0].Title != "Second Course" {
		t.Fatalf("expected newest first, got %+v", courses)
	}
}

func TestListByCreator(t *testing.T) {
	svc, _ := newCourseServiceForTest()
	ctx := context.Background()

	if _, err := svc.Create(ctx, 1, validCourseRequest()); err != nil {
		t.Fatalf("Create: %v", err)
	}
	other := validCourseRequest()
	other.Title = "Someone Else's Course"
	if _, err := svc.Create(ctx, 2, other); err != nil {
		t.Fatalf("Create: %v", err)
	}

	mine, err := svc.ListByCreator(ctx, 1)
	if err != nil {
		t.Fatalf("ListByCreator: %v", err)
	}
	if len(mine) != 1 || mine[0].Title != "Intro to Go" {
		t.Fatalf("wrong courses for creator: %+v", mine)
	}
}

func TestEnroll(t *testing.T) {
	svc, _ := newCourseServiceForTest()
	ctx := context.Background()

	id, err := svc.Create(ctx, 1, validCourseRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	already, err := svc.Enroll(ctx, 5, id)
	if err != nil {
		t.Fatalf("Enroll: %v", err)
	}
	if already {
		t.Fatal("first enrollment reported as repeat")
	}

	already, err = svc.Enroll(ctx, 5, id)
	if err != nil {
		t.Fatalf("repeat Enroll: %v", err)
	}
	if !already {
		t.Fatal("repeat enrollment not detected")
	}
}

func TestEnrollMissingCourse(t *testing.T) {
	svc, _ := newCourseServiceForTest()

	_, err := svc.Enroll(context.Background(), 5, 404)
	if !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}
