package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Ealanisln/vetify-api/internal/audit"
	domain "github.com/Ealanisln/vetify-api/internal/domain/appointment"
	"github.com/Ealanisln/vetify-api/internal/models"
)

type RejectRequest struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRejectRequest(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RejectRequest {
	return &RejectRequest{
		repo:  repo,
		audit: audit,
	}
}

func (uc *RejectRequest) Execute(
	ctx context.Context,
	tenantID uint,
	staffID uint,
	requestID uint,
) (*models.AppointmentRequest, error) {

	req, err := uc.repo.GetRequest(ctx, tenantID, requestID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrRequestNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := domain.ResolveRequest(req, domain.RequestRejected); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateRequestStatus(ctx, req, domain.RequestPending); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		TenantID: tenantID,
		StaffID:  &staffID,
		Action:   "appointment_request_rejected",
		Entity:   "appointment_request",
		EntityID: &req.ID,
	})

	return req, nil
}

type ListRequests struct {
	repo domain.Repository
}

func NewListRequests(repo domain.Repository) *ListRequests {
	return &ListRequests{repo: repo}
}

func (uc *ListRequests) Execute(
	ctx context.Context,
	f domain.RequestFilter,
) ([]models.AppointmentRequest, error) {
	return uc.repo.ListRequests(ctx, f)
}
