package appointment

import (
	"context"
	"time"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/nearbiz/internal/domain/appointment"
)

type AvailabilityInput struct {
	BusinessID   int64
	TechnicianID int64
	// ServiceID is optional; without it slots last DefaultServiceDuration.
	ServiceID int64
	Date      string
	Format    domain.LabelFormat
}

type AvailabilityOutput struct {
	Date            string                `json:"date"`
	BusinessID      int64                 `json:"business_id"`
	TechnicianID    int64                 `json:"technician_id"`
	DurationMinutes int                   `json:"duration_minutes"`
	Source          domain.PlanSource     `json:"source"`
	Reason          domain.FallbackReason `json:"reason,omitempty"`
	Window          *domain.Interval      `json:"window,omitempty"`
	Slots           []domain.TimeSlot     `json:"slots"`
}

type GetAvailability struct {
	repo  domain.Directory
	loc   *time.Location
	now   func() time.Time
	slots domain.SlotOptions
	log   *zap.Logger
}

func NewGetAvailability(
	repo domain.Directory,
	loc *time.Location,
	now func() time.Time,
	slots domain.SlotOptions,
	log *zap.Logger,
) *GetAvailability {
	return &GetAvailability{repo: repo, loc: loc, now: now, slots: slots, log: log}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) (*AvailabilityOutput, error) {

	// --------------------------------------------------
	// 1️⃣ Business
	// --------------------------------------------------
	biz, err := uc.repo.GetBusiness(ctx, in.BusinessID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Date in the business timezone
	// --------------------------------------------------
	date, err := domain.ParseDate(in.Date, uc.loc)
	if err != nil {
		return nil, domain.ErrInvalidDateOrTime
	}

	now := uc.now().In(uc.loc)
	if !domain.IsDateBookable(date, now) {
		return nil, domain.ErrDateInPast
	}

	// --------------------------------------------------
	// 3️⃣ Technician and service duration
	// --------------------------------------------------
	techs, err := uc.repo.ListTechnicians(ctx, biz.ID)
	if err != nil {
		return nil, err
	}
	if _, err := domain.FindTechnician(techs, in.TechnicianID); err != nil {
		return nil, err
	}

	duration := domain.DefaultServiceDuration
	if in.ServiceID != 0 {
		services, err := uc.repo.ListServices(ctx, biz.ID)
		if err != nil {
			return nil, err
		}
		svc, err := domain.FindService(services, in.ServiceID)
		if err != nil {
			return nil, err
		}
		duration = svc.Duration()
	}

	// --------------------------------------------------
	// 4️⃣ Slot plan
	// --------------------------------------------------
	plan := domain.GenerateSlots(biz.Hours, date, uc.slots)
	if plan.IsFallback() {
		uc.log.Warn("using default slot window",
			zap.Int64("business_id", biz.ID),
			zap.String("reason", string(plan.Reason)),
			zap.String("date", in.Date),
		)
	}

	// --------------------------------------------------
	// 5️⃣ Fresh bookings
	// --------------------------------------------------
	bookings, err := uc.repo.ListBookings(ctx, in.TechnicianID)
	if err != nil {
		return nil, err
	}

	format := in.Format
	if format == "" {
		format = domain.Label24
	}

	out := &AvailabilityOutput{
		Date:            date.Format(time.DateOnly),
		BusinessID:      biz.ID,
		TechnicianID:    in.TechnicianID,
		DurationMinutes: int(duration / time.Minute),
		Source:          plan.Source,
		Reason:          plan.Reason,
		Slots: domain.Availability(plan, domain.SlotQuery{
			Date:         date,
			Duration:     duration,
			TechnicianID: in.TechnicianID,
		}, bookings, now, format),
	}
	if plan.Source != domain.SourceClosed {
		out.Window = &plan.Window
	}

	return out, nil
}
