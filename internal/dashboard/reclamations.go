package dashboard

import (
	"context"
	"net/http"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/spec-kit/verve-admin/internal/api/dto"
	"github.com/spec-kit/verve-admin/internal/domain"
)

// ReclamationView is a réclamation enriched with the reporter and syndic
// display names, recomputed on every fetch against the current user list.
type ReclamationView struct {
	domain.Reclamation
	ReporterName string
	SyndicName   string
}

// FetchReclamations loads réclamations and users concurrently, joins the
// display names, and replaces the réclamation store. Both requests must
// succeed; a failure on either side fails the fetch.
func (d *Dashboard) FetchReclamations(ctx context.Context) error {
	d.Reclamations.SetLoading(true)

	var (
		recRecords  []dto.ReclamationRecord
		userRecords []dto.AppUserRecord
		recErr      error
		userErr     error
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		recErr = d.client.get(ctx, "/api/reclamation_api", &recRecords)
	}()
	go func() {
		defer wg.Done()
		userErr = d.client.get(ctx, "/api/appuser_api", &userRecords)
	}()
	wg.Wait()

	if recErr != nil {
		d.Reclamations.Fail(recErr)
		return recErr
	}
	if userErr != nil {
		d.Reclamations.Fail(userErr)
		return userErr
	}

	names := make(map[primitive.ObjectID]string, len(userRecords))
	for _, r := range userRecords {
		u, err := r.Domain()
		if err != nil {
			d.Reclamations.Fail(err)
			return err
		}
		names[u.ID] = u.FullName()
	}

	views := make([]ReclamationView, 0, len(recRecords))
	for _, r := range recRecords {
		rec, err := r.Domain()
		if err != nil {
			d.Reclamations.Fail(err)
			return err
		}
		views = append(views, ReclamationView{
			Reclamation:  rec,
			ReporterName: nameFor(names, rec.UserID),
			SyndicName:   nameFor(names, rec.SyndicID),
		})
	}

	d.Reclamations.Replace(views)
	return nil
}

func nameFor(names map[primitive.ObjectID]string, id *primitive.ObjectID) string {
	if id == nil {
		return ""
	}
	if name, ok := names[*id]; ok {
		return name
	}
	return "Inconnu"
}

// UpdateReclamation records a treatment and refetches the réclamation store.
func (d *Dashboard) UpdateReclamation(ctx context.Context, id primitive.ObjectID, treatment domain.ReclamationTreatment) error {
	var resp dto.SuccessResponse
	err := d.client.send(ctx, http.MethodPost, "/api/update_reclamation", dto.UpdateReclamationRequest{
		ReclamationID:     id.Hex(),
		SyndicComment:     treatment.SyndicComment,
		ImageConfirmedURL: treatment.ImageConfirmedURL,
		Status:            string(treatment.Status),
	}, &resp)
	if err != nil {
		d.Notices.Publish(NoticeError, err.Error())
		return err
	}
	d.Notices.Publish(NoticeSuccess, "Réclamation mise à jour avec succès")
	return d.FetchReclamations(ctx)
}

// AssignSyndic assigns a syndic to a réclamation. A réclamation already
// treated is refused locally, without issuing a request.
func (d *Dashboard) AssignSyndic(ctx context.Context, reclamationID, syndicID primitive.ObjectID) error {
	for _, rec := range d.Reclamations.Snapshot().Items {
		if rec.ID == reclamationID && rec.Status.Terminal() {
			err := &APIError{Status: http.StatusConflict, Message: "Réclamation déjà traitée"}
			d.Notices.Publish(NoticeError, err.Message)
			return err
		}
	}

	var updated dto.ReclamationRecord
	err := d.client.send(ctx, http.MethodPost, "/api/assign_syndic", dto.AssignSyndicRequest{
		ReclamationID: reclamationID.Hex(),
		SyndicID:      syndicID.Hex(),
	}, &updated)
	if err != nil {
		d.Notices.Publish(NoticeError, err.Error())
		return err
	}
	d.Notices.Publish(NoticeSuccess, "Syndic assigné avec succès")
	return d.FetchReclamations(ctx)
}
