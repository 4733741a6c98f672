package dashboard

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/spec-kit/verve-admin/internal/api/dto"
	"github.com/spec-kit/verve-admin/internal/domain"
)

// FetchUsers loads the user list and replaces the user store. A single
// malformed record fails the whole fetch.
func (d *Dashboard) FetchUsers(ctx context.Context) error {
	d.Users.SetLoading(true)

	var records []dto.AppUserRecord
	if err := d.client.get(ctx, "/api/appuser_api", &records); err != nil {
		d.Users.Fail(err)
		return err
	}

	users := make([]domain.AppUser, 0, len(records))
	for _, r := range records {
		u, err := r.Domain()
		if err != nil {
			d.Users.Fail(err)
			return err
		}
		users = append(users, u)
	}

	d.Users.Replace(users)
	return nil
}

// CreateUser creates an account and refetches the user store.
func (d *Dashboard) CreateUser(ctx context.Context, input dto.CreateUserRequest) error {
	var resp dto.MessageResponse
	if err := d.client.send(ctx, http.MethodPost, "/api/create_user", input, &resp); err != nil {
		d.Notices.Publish(NoticeError, err.Error())
		return err
	}
	d.Notices.Publish(NoticeSuccess, resp.Message)
	return d.FetchUsers(ctx)
}

// UpdateUser applies a partial update and refetches the user store.
func (d *Dashboard) UpdateUser(ctx context.Context, input dto.UpdateUserRequest) error {
	var resp dto.MessageResponse
	if err := d.client.send(ctx, http.MethodPut, "/api/update_user", input, &resp); err != nil {
		d.Notices.Publish(NoticeError, err.Error())
		return err
	}
	d.Notices.Publish(NoticeSuccess, resp.Message)
	return d.FetchUsers(ctx)
}

// DeleteUser removes an account and refetches the user store.
func (d *Dashboard) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	var resp dto.MessageResponse
	if err := d.client.send(ctx, http.MethodDelete, "/api/delete_user", dto.DeleteRequest{ID: id.Hex()}, &resp); err != nil {
		d.Notices.Publish(NoticeError, err.Error())
		return err
	}
	d.Notices.Publish(NoticeSuccess, resp.Message)
	return d.FetchUsers(ctx)
}
