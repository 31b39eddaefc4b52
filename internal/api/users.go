package api

import (
	"context"
	"net/url"

	"github.com/uyhome/adminctl/internal/models"
)

type UserFilter struct {
	Search   string
	Role     models.Role
	Status   models.UserStatus
	Language string
	Ordering string
	Page     int
	PageSize int
}

func (f UserFilter) values() url.Values {
	q := url.Values{}
	setStr(q, "search", f.Search)
	setStr(q, "role", string(f.Role))
	setStr(q, "status", string(f.Status))
	setStr(q, "language", f.Language)
	setStr(q, "ordering", f.Ordering)
	setInt(q, "page", f.Page)
	setInt(q, "page_size", f.PageSize)
	return q
}

type UserPayload struct {
	Name     string            `json:"name"`
	Phone    string            `json:"phone"`
	Password string            `json:"password,omitempty"`
	Role     models.Role       `json:"role"`
	Status   models.UserStatus `json:"status"`
	Language string            `json:"language"`
	Contacts models.Contacts   `json:"contacts"`
}

type UserPatch struct {
	Name     *string            `json:"name,omitempty"`
	Role     *models.Role       `json:"role,omitempty"`
	Status   *models.UserStatus `json:"status,omitempty"`
	Language *string            `json:"language,omitempty"`
	Balance  *float64           `json:"balance,omitempty"`
}

func (c *Client) ListUsers(ctx context.Context, f UserFilter) (*Page[models.User], error) {
	return list[models.User](ctx, c, "/users", f.values(), "fetch users")
}

func (c *Client) GetUser(ctx context.Context, id int64) (models.User, error) {
	return get[models.User](ctx, c, "/users", id, "fetch user")
}

func (c *Client) CreateUser(ctx context.Context, p UserPayload) (models.User, error) {
	return create[models.User](ctx, c, "/users", p, "create user")
}

func (c *Client) UpdateUser(ctx context.Context, id int64, p UserPayload) (models.User, error) {
	return update[models.User](ctx, c, "/users", id, p, "update user")
}

func (c *Client) PatchUser(ctx context.Context, id int64, p UserPatch) (models.User, error) {
	return patch[models.User](ctx, c, "/users", id, p, "update user")
}

func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return del(ctx, c, "/users", id, "delete user")
}
