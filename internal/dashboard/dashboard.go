package dashboard

import (
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/verve-admin/internal/domain"
)

// Dashboard bundles one store per administered resource plus the client and
// notice board behind them. Mutations go through the client, then invalidate
// by refetching the affected stores.
type Dashboard struct {
	client *Client
	logger *zap.Logger

	Notices *NoticeBoard

	Users          *Store[domain.AppUser]
	Reclamations   *Store[ReclamationView]
	Notifications  *Store[domain.AppNotification]
	Sponsorships   *Store[domain.Sponsorship]
	AccessRequests *Store[domain.AccessRequest]
}

// New constructs a dashboard over the given client.
func New(client *Client, noticeTTL time.Duration, logger *zap.Logger) *Dashboard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dashboard{
		client:         client,
		logger:         logger,
		Notices:        NewNoticeBoard(noticeTTL),
		Users:          NewStore[domain.AppUser](),
		Reclamations:   NewStore[ReclamationView](),
		Notifications:  NewStore[domain.AppNotification](),
		Sponsorships:   NewStore[domain.Sponsorship](),
		AccessRequests: NewStore[domain.AccessRequest](),
	}
}

// Client exposes the underlying HTTP client, mainly for login.
func (d *Dashboard) Client() *Client {
	return d.client
}
