package appointment

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/nearbiz/internal/audit"
	domain "github.com/BruksfildServices01/nearbiz/internal/domain/appointment"
	"github.com/BruksfildServices01/nearbiz/internal/domain/schedule"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	UserID   uint
	ClientID int64

	BusinessID   int64
	TechnicianID int64
	ServiceID    int64

	Date string
	Time string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Directory
	audit *audit.Dispatcher
	loc   *time.Location
	now   func() time.Time
	slots domain.SlotOptions
	log   *zap.Logger
}

func NewCreateBooking(
	repo domain.Directory,
	dispatcher *audit.Dispatcher,
	loc *time.Location,
	now func() time.Time,
	slots domain.SlotOptions,
	log *zap.Logger,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: dispatcher,
		loc:   loc,
		now:   now,
		slots: slots,
		log:   log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*domain.Booking, error) {

	// --------------------------------------------------
	// 1️⃣ Business
	// --------------------------------------------------
	biz, err := uc.repo.GetBusiness(ctx, in.BusinessID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Date / time in the business timezone
	// --------------------------------------------------
	date, err := domain.ParseDate(in.Date, uc.loc)
	if err != nil {
		return nil, domain.ErrInvalidDateOrTime
	}
	start, err := schedule.ParseClock(in.Time)
	if err != nil {
		return nil, domain.ErrInvalidDateOrTime
	}

	// --------------------------------------------------
	// 3️⃣ Not in the past
	// --------------------------------------------------
	if !start.On(date).After(uc.now().In(uc.loc)) {
		return nil, domain.ErrDateInPast
	}

	// --------------------------------------------------
	// 4️⃣ Technician + service
	// --------------------------------------------------
	techs, err := uc.repo.ListTechnicians(ctx, biz.ID)
	if err != nil {
		return nil, err
	}
	if _, err := domain.FindTechnician(techs, in.TechnicianID); err != nil {
		return nil, err
	}

	services, err := uc.repo.ListServices(ctx, biz.ID)
	if err != nil {
		return nil, err
	}
	svc, err := domain.FindService(services, in.ServiceID)
	if err != nil {
		return nil, err
	}

	end, err := domain.EndOf(start, svc.Duration())
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5️⃣ Working hours
	// --------------------------------------------------
	query := domain.SlotQuery{
		Date:         date,
		Start:        start,
		Duration:     svc.Duration(),
		TechnicianID: in.TechnicianID,
	}

	plan := domain.GenerateSlots(biz.Hours, date, uc.slots)
	if plan.Source == domain.SourceClosed {
		return nil, domain.ErrBusinessClosed
	}
	if plan.IsFallback() {
		uc.log.Warn("validating booking against default window",
			zap.Int64("business_id", biz.ID),
			zap.String("reason", string(plan.Reason)),
		)
	}
	if !domain.IsWithinWorkingHours(plan, query) {
		return nil, domain.ErrOutsideWorkingHours
	}

	// --------------------------------------------------
	// 6️⃣ Conflict check against fresh bookings
	// --------------------------------------------------
	bookings, err := uc.repo.ListBookings(ctx, in.TechnicianID)
	if err != nil {
		return nil, err
	}

	blocking := domain.BlockingIntervals(bookings, in.TechnicianID, date)
	if domain.HasOverlap(query.Interval(), blocking) {
		uc.dispatch(in, audit.ActionBookingConflict, "", nil)
		return nil, domain.ErrSlotTaken
	}

	// --------------------------------------------------
	// 7️⃣ Submit (status centralised)
	// --------------------------------------------------
	created, err := uc.repo.CreateBooking(ctx, domain.NewBooking{
		ClientID:     in.ClientID,
		TechnicianID: in.TechnicianID,
		ServiceID:    svc.ID,
		Date:         date,
		Start:        start,
		End:          end,
		Status:       domain.InitialStatus(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrBookingRejected) {
			uc.dispatch(in, audit.ActionBookingRejected, "", map[string]any{"error": err.Error()})
		}
		return nil, err
	}

	// --------------------------------------------------
	// 8️⃣ Audit
	// --------------------------------------------------
	entityID := ""
	if created.ID != 0 {
		entityID = strconv.FormatInt(created.ID, 10)
	}
	uc.dispatch(in, audit.ActionBookingCreated, entityID, nil)

	return created, nil
}

func (uc *CreateBooking) dispatch(in CreateBookingInput, action, entityID string, extra map[string]any) {
	meta := map[string]any{
		"business_id":   in.BusinessID,
		"technician_id": in.TechnicianID,
		"service_id":    in.ServiceID,
		"date":          in.Date,
		"time":          in.Time,
	}
	for k, v := range extra {
		meta[k] = v
	}

	userID := in.UserID
	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   action,
		Entity:   "booking",
		EntityID: entityID,
		Metadata: meta,
	})
}
