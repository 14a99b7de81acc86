package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"escapade/infras/bookingapi"
	"escapade/infras/otel"
	"escapade/internal/domains/reservation/model"
	"escapade/shared/constant"
)

const pathBooking = "/booking"

// Reservation submits bookings to the external booking API: Create requests a
// brand-new session, Join attaches the party to an existing one.
type Reservation interface {
	Create(ctx context.Context, booking model.Booking) error
	Join(ctx context.Context, booking model.Booking) error
}

type reservationImpl struct {
	api  bookingapi.Client
	otel otel.Otel
}

func New(api bookingapi.Client, ot otel.Otel) Reservation {
	return &reservationImpl{
		api:  api,
		otel: ot,
	}
}

func (r *reservationImpl) Create(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.api.Post(ctx, pathBooking, booking, nil); err != nil {
		return fmt.Errorf("failed to submit booking: %w", err)
	}

	return nil
}

func (r *reservationImpl) Join(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Join")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.api.Patch(ctx, pathBooking, booking, nil); err != nil {
		return fmt.Errorf("failed to join session: %w", err)
	}

	return nil
}
