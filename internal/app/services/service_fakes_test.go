package services

import (
	"context"
	"sync"
	"time"

	"github.com/miraihq/mirai-backend/internal/app/models"
	"github.com/miraihq/mirai-backend/internal/pkg/apperrors"
)

// In-memory repository fakes backing the service tests.

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*models.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == user.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
	}
	f.nextID++
	stored := *user
	stored.ID = f.nextID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.users[stored.ID] = &stored
	return stored.ID, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) GetByGoogleID(_ context.Context, googleID string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.GoogleID != nil && *u.GoogleID == googleID {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, userID int64, update *models.UserProfileUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	if update.Name != nil {
		u.Name = *update.Name
	}
	if update.CollegeName != nil {
		u.CollegeName = update.CollegeName
	}
	if update.Course != nil {
		u.Course = update.Course
	}
	if update.UserType != nil {
		u.UserType = *update.UserType
	}
	u.UpdatedAt = time.Now()
	return nil
}

func (f *fakeUserRepo) LinkGoogleID(_ context.Context, userID int64, googleID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.GoogleID = &googleID
	return nil
}

type fakeCourseRepo struct {
	mu      sync.Mutex
	nextID  int64
	courses []models.Course
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{}
}

func (f *fakeCourseRepo) Create(_ context.Context, course *models.Course) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	stored := *course
	stored.ID = f.nextID
	stored.CreatedAt = time.Now()
	if stored.Tags == nil {
		stored.Tags = []string{}
	}
	// Newest first, matching the list queries.
	f.courses = append([]models.Course{stored}, f.courses...)
	return stored.ID, nil
}

func (f *fakeCourseRepo) GetAll(_ context.Context) ([]models.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Course, len(f.courses))
	copy(out, f.courses)
	return out, nil
}

func (f *fakeCourseRepo) GetByCreator(_ context.Context, creatorID int64) ([]models.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Course, 0)
	for _, c := range f.courses {
		if c.CreatorID != nil && *c.CreatorID == creatorID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCourseRepo) GetByID(_ context.Context, id int64) (*models.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.courses {
		if c.ID == id {
			copied := c
			return &copied, nil
		}
	}
	return nil, apperrors.ErrCourseNotFound
}

type fakeEnrollmentRepo struct {
	mu       sync.Mutex
	enrolled map[[2]int64]bool
}

func newFakeEnrollmentRepo() *fakeEnrollmentRepo {
	return &fakeEnrollmentRepo{enrolled: make(map[[2]int64]bool)}
}

func (f *fakeEnrollmentRepo) Create(_ context.Context, userID, courseID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := [2]int64{userID, courseID}
	if f.enrolled[key] {
		return apperrors.ErrConflict
	}
	f.enrolled[key] = true
	return nil
}

type fakeMentorRepo struct {
	mu      sync.Mutex
	nextID  int64
	mentors []models.Mentor
}

func newFakeMentorRepo() *fakeMentorRepo {
	return &fakeMentorRepo{}
}

func (f *fakeMentorRepo) Create(_ context.Context, mentor *models.Mentor) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	stored := *mentor
	stored.ID = f.nextID
	stored.CreatedAt = time.Now()
	f.mentors = append(f.mentors, stored)
	return stored.ID, nil
}

func (f *fakeMentorRepo) GetAll(_ context.Context) ([]models.Mentor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Mentor, len(f.mentors))
	copy(out, f.mentors)
	return out, nil
}

func (f *fakeMentorRepo) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.mentors)), nil
}
