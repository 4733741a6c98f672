package dashboard

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/spec-kit/verve-admin/internal/api/dto"
	"github.com/spec-kit/verve-admin/internal/domain"
)

// FetchAccessRequests loads the access-request list and replaces the store.
func (d *Dashboard) FetchAccessRequests(ctx context.Context) error {
	d.AccessRequests.SetLoading(true)

	var records []dto.AccessRequestRecord
	if err := d.client.get(ctx, "/api/access_request_api", &records); err != nil {
		d.AccessRequests.Fail(err)
		return err
	}

	requests := make([]domain.AccessRequest, 0, len(records))
	for _, r := range records {
		ar, err := r.Domain()
		if err != nil {
			d.AccessRequests.Fail(err)
			return err
		}
		requests = append(requests, ar)
	}

	d.AccessRequests.Replace(requests)
	return nil
}

// ConvertAccessRequest creates an account from a pending request, then
// removes the request. When the account is created but the cleanup delete
// fails, the error surfaces and both stores are refetched so the
// intermediate state is visible.
func (d *Dashboard) ConvertAccessRequest(ctx context.Context, request domain.AccessRequest, password string, userType domain.UserType) error {
	var created dto.MessageResponse
	err := d.client.send(ctx, http.MethodPost, "/api/create_user", dto.CreateUserRequest{
		Email:       request.Email,
		Password:    password,
		Name:        request.Name,
		Surname:     request.Surname,
		PhoneNumber: request.PhoneNumber,
		UserType:    string(userType),
	}, &created)
	if err != nil {
		d.Notices.Publish(NoticeError, err.Error())
		return err
	}

	var deleted dto.MessageResponse
	if err := d.client.send(ctx, http.MethodDelete, "/api/delete_access_request", dto.DeleteRequest{ID: request.ID.Hex()}, &deleted); err != nil {
		d.Notices.Publish(NoticeError, err.Error())
		_ = d.FetchUsers(ctx)
		_ = d.FetchAccessRequests(ctx)
		return err
	}

	d.Notices.Publish(NoticeSuccess, "Utilisateur créé à partir de la demande d'accès")
	if err := d.FetchUsers(ctx); err != nil {
		return err
	}
	return d.FetchAccessRequests(ctx)
}

// RejectAccessRequest marks a request rejected and refetches the store.
func (d *Dashboard) RejectAccessRequest(ctx context.Context, id primitive.ObjectID) error {
	var resp dto.MessageResponse
	err := d.client.send(ctx, http.MethodPut, "/api/update_access_request", dto.UpdateAccessRequestRequest{
		RequestID: id.Hex(),
		Status:    domain.AccessRequestStatusRejected,
	}, &resp)
	if err != nil {
		d.Notices.Publish(NoticeError, err.Error())
		return err
	}
	d.Notices.Publish(NoticeSuccess, resp.Message)
	return d.FetchAccessRequests(ctx)
}

// DeleteAccessRequest removes a request outright and refetches the store.
func (d *Dashboard) DeleteAccessRequest(ctx context.Context, id primitive.ObjectID) error {
	var resp dto.MessageResponse
	if err := d.client.send(ctx, http.MethodDelete, "/api/delete_access_request", dto.DeleteRequest{ID: id.Hex()}, &resp); err != nil {
		d.Notices.Publish(NoticeError, err.Error())
		return err
	}
	d.Notices.Publish(NoticeSuccess, resp.Message)
	return d.FetchAccessRequests(ctx)
}
