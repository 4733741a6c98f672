package dashboard

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/spec-kit/verve-admin/internal/api/dto"
	"github.com/spec-kit/verve-admin/internal/domain"
)

// FetchSponsorships loads the sponsorship list, sponsor joins included, and
// replaces the sponsorship store.
func (d *Dashboard) FetchSponsorships(ctx context.Context) error {
	d.Sponsorships.SetLoading(true)

	var records []dto.SponsorshipRecord
	if err := d.client.get(ctx, "/api/sponsorship_api", &records); err != nil {
		d.Sponsorships.Fail(err)
		return err
	}

	sponsorships := make([]domain.Sponsorship, 0, len(records))
	for _, r := range records {
		sp, err := r.Domain()
		if err != nil {
			d.Sponsorships.Fail(err)
			return err
		}
		sponsorships = append(sponsorships, sp)
	}

	d.Sponsorships.Replace(sponsorships)
	return nil
}

// DeleteSponsorship removes a sponsorship and refetches the store.
func (d *Dashboard) DeleteSponsorship(ctx context.Context, id primitive.ObjectID) error {
	var resp dto.MessageResponse
	if err := d.client.send(ctx, http.MethodDelete, "/api/delete_sponsorship", dto.DeleteRequest{ID: id.Hex()}, &resp); err != nil {
		d.Notices.Publish(NoticeError, err.Error())
		return err
	}
	d.Notices.Publish(NoticeSuccess, resp.Message)
	return d.FetchSponsorships(ctx)
}

// CreateUserFromSponsorship converts a sponsored candidate into an account,
// then removes the sponsorship. When the account is created but the cleanup
// delete fails, the error surfaces and both stores are refetched so the
// intermediate state is visible.
func (d *Dashboard) CreateUserFromSponsorship(ctx context.Context, input dto.CreateUserRequest, sponsorshipID primitive.ObjectID) error {
	var created dto.MessageResponse
	if err := d.client.send(ctx, http.MethodPost, "/api/create_user", input, &created); err != nil {
		d.Notices.Publish(NoticeError, err.Error())
		return err
	}

	var deleted dto.MessageResponse
	if err := d.client.send(ctx, http.MethodDelete, "/api/delete_sponsorship", dto.DeleteRequest{ID: sponsorshipID.Hex()}, &deleted); err != nil {
		d.Notices.Publish(NoticeError, err.Error())
		_ = d.FetchUsers(ctx)
		_ = d.FetchSponsorships(ctx)
		return err
	}

	d.Notices.Publish(NoticeSuccess, "Utilisateur créé à partir du parrainage")
	if err := d.FetchUsers(ctx); err != nil {
		return err
	}
	return d.FetchSponsorships(ctx)
}
