package store

import (
	"context"

	"github.com/uyhome/adminctl/internal/api"
	"github.com/uyhome/adminctl/internal/logging"
	"github.com/uyhome/adminctl/internal/models"
)

type UserFilters struct {
	Search   string
	Role     models.Role
	Status   models.UserStatus
	Language string
	Ordering string
}

// Users is the view-model for the accounts screen.
type Users struct {
	*Resource[models.User, UserFilters]
	api *api.Client
}

func NewUsers(c *api.Client, log logging.Logger) *Users {
	s := &Users{api: c}
	s.Resource = NewResource(Config[models.User, UserFilters]{
		List: func(ctx context.Context, f UserFilters, page, size int) (*api.Page[models.User], error) {
			return c.ListUsers(ctx, api.UserFilter{
				Search:   f.Search,
				Role:     f.Role,
				Status:   f.Status,
				Language: f.Language,
				Ordering: f.Ordering,
				Page:     page,
				PageSize: size,
			})
		},
		ID:           func(v models.User) int64 { return v.ID },
		CreatePolicy: CreatePrepend,
		Logger:       log,
	})
	return s
}

func (s *Users) Create(ctx context.Context, p api.UserPayload) (models.User, error) {
	return s.createItem(ctx, func(ctx context.Context) (models.User, error) {
		return s.api.CreateUser(ctx, p)
	})
}

func (s *Users) Update(ctx context.Context, id int64, p api.UserPayload) (models.User, error) {
	return s.replaceItem(ctx, func(ctx context.Context) (models.User, error) {
		return s.api.UpdateUser(ctx, id, p)
	})
}

func (s *Users) Patch(ctx context.Context, id int64, p api.UserPatch) (models.User, error) {
	return s.replaceItem(ctx, func(ctx context.Context) (models.User, error) {
		return s.api.PatchUser(ctx, id, p)
	})
}

// SetStatus blocks or unblocks an account in place.
func (s *Users) SetStatus(ctx context.Context, id int64, status models.UserStatus) (models.User, error) {
	return s.Patch(ctx, id, api.UserPatch{Status: &status})
}

func (s *Users) Delete(ctx context.Context, id int64) error {
	return s.removeItem(ctx, id, func(ctx context.Context) error {
		return s.api.DeleteUser(ctx, id)
	})
}
