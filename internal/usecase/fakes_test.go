package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"rating-catalog/internal/data/entity"
)

type fakeRatingRepo struct {
	items   []*entity.Rating
	findErr error
}

func (f *fakeRatingRepo) Create(ctx context.Context, rating *entity.Rating) error {
	f.items = append(f.items, rating)
	return nil
}

func (f *fakeRatingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Rating, error) {
	for _, r := range f.items {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeRatingRepo) FindAll(ctx context.Context) ([]*entity.Rating, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	out := make([]*entity.Rating, len(f.items))
	copy(out, f.items)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeRatingRepo) Update(ctx context.Context, rating *entity.Rating) error {
	for i, r := range f.items {
		if r.ID == rating.ID {
			f.items[i] = rating
			return nil
		}
	}
	return fmt.Errorf("rating not found")
}

func (f *fakeRatingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, r := range f.items {
		if r.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("rating not found")
}

type fakeSeriesRepo struct {
	items []*entity.Series
}

func (f *fakeSeriesRepo) Create(ctx context.Context, series *entity.Series) error {
	f.items = append(f.items, series)
	return nil
}

func (f *fakeSeriesRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Series, error) {
	for _, s := range f.items {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSeriesRepo) FindAll(ctx context.Context) ([]*entity.Series, error) {
	out := make([]*entity.Series, len(f.items))
	copy(out, f.items)
	return out, nil
}

type fakeUserRepo struct {
	users []*entity.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

type fakeSessionRepo struct {
	sessions []*entity.Session
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	f.sessions = append(f.sessions, session)
	return nil
}

func (f *fakeSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	for _, s := range f.sessions {
		if s.Token.String() == token && s.RevokedAt == nil {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSessionRepo) Revoke(ctx context.Context, token string) error {
	for _, s := range f.sessions {
		if s.Token.String() == token {
			now := time.Now()
			s.RevokedAt = &now
			return nil
		}
	}
	return fmt.Errorf("session not found")
}
