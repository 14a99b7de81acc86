package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"escapade/config"
	kafkaMocks "escapade/infras/kafka/mocks"
	mailerMocks "escapade/infras/mailer/mocks"
	"escapade/infras/otel/mocks"
	catalogMocks "escapade/internal/domains/catalog/mocks"
	catalogModel "escapade/internal/domains/catalog/model"
	reservationMocks "escapade/internal/domains/reservation/mocks"
	"escapade/internal/domains/reservation/model/dto"
	"escapade/internal/domains/reservation/service"
	"escapade/shared/constant"
	"escapade/shared/failure"
	"escapade/shared/timezone"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Kafka.Topics.BookingEvents = "booking.events"
	cfg.External.SMTP.AdminEmail = "admin@example.com"
	cfg.External.BackOffice.URL = "https://backoffice.example.com"

	return cfg
}

func fixtureActivities() []catalogModel.Activity {
	return []catalogModel.Activity{
		{
			ID:              "act-kayak",
			Name:            "Kayak",
			HalfDay:         true,
			FullDay:         true,
			DurationHalfDay: "4h",
			DurationFullDay: "8h",
			HoursHalfDay:    4,
			HoursFullDay:    8,
			PriceHalfDay:    catalogModel.PriceTier{Standard: 45, Reduced: 40},
			PriceFullDay:    catalogModel.PriceTier{Standard: 80, Reduced: 70},
			MaxParticipants: 8,
		},
	}
}

func fixtureSpots() []catalogModel.Spot {
	return []catalogModel.Spot{
		{
			ID:   "spot-river",
			Name: "La Rivière",
			PracticedActivities: []catalogModel.PracticedActivity{
				{ActivityID: "act-kayak", Name: "Kayak"},
			},
		},
	}
}

func fixtureSession(placesReserved int) catalogModel.Session {
	return catalogModel.Session{
		ID:             "sess-1",
		Date:           timezone.Now().AddDate(0, 0, 2).Format(constant.DateFormat),
		StartTime:      "10:00",
		EndTime:        "14:00",
		Activity:       fixtureActivities()[0],
		Spot:           catalogModel.SpotRef{ID: "spot-river", Name: "La Rivière"},
		PlacesMax:      8,
		PlacesReserved: placesReserved,
		SessionType:    constant.SessionTypeHalfDay,
		Duration:       "4h",
	}
}

func createRequest() dto.CreateReservationRequest {
	return dto.CreateReservationRequest{
		FirstName: "Claire",
		LastName:  "Dupont",
		Email:     "claire@example.com",
		Phone:     "0612345678",

		ActivityID:  "act-kayak",
		SpotID:      "spot-river",
		SessionType: constant.SessionTypeHalfDay,
		Date:        timezone.Now().AddDate(0, 0, 7).Format(constant.DateFormat),
		StartTime:   "10:00",

		Participants: []dto.ParticipantPayload{
			{Height: 175, Weight: 70},
			{Height: 160, Weight: 55},
		},

		Message: "Nous sommes débutants.",
	}
}

func joinRequest(people int) dto.JoinSessionRequest {
	participants := make([]dto.ParticipantPayload, people)
	for i := range participants {
		participants[i] = dto.ParticipantPayload{Height: 170, Weight: 70}
	}

	return dto.JoinSessionRequest{
		SessionID: "sess-1",

		FirstName: "Claire",
		LastName:  "Dupont",
		Email:     "claire@example.com",
		Phone:     "0612345678",

		Participants: participants,
	}
}

func TestReservationService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockCatalog := catalogMocks.NewMockCatalogService(ctrl)
	mockMailer := mailerMocks.NewMockMailer(ctrl)
	mockEvents := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockCatalog, testConfig(), mockMailer, mockEvents, mockOtel)

	t.Run("successful creation notifies admin and invalidates sessions", func(t *testing.T) {
		notified := make(chan struct{})

		mockCatalog.EXPECT().Activities(gomock.Any()).Return(fixtureActivities(), nil)
		mockCatalog.EXPECT().Spots(gomock.Any()).Return(fixtureSpots(), nil)
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		mockCatalog.EXPECT().InvalidateSessions(gomock.Any())

		mockMailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
		mockEvents.EXPECT().
			SendMessages(gomock.Any(), "booking.events", gomock.Any()).
			DoAndReturn(func(context.Context, string, ...any) error {
				close(notified)
				return nil
			})

		bookingID, err := svc.Create(context.Background(), createRequest())

		assert.NoError(t, err)
		assert.NotEmpty(t, bookingID)

		<-notified
	})

	t.Run("notification failures never fail the booking", func(t *testing.T) {
		notified := make(chan struct{})

		mockCatalog.EXPECT().Activities(gomock.Any()).Return(fixtureActivities(), nil)
		mockCatalog.EXPECT().Spots(gomock.Any()).Return(fixtureSpots(), nil)
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		mockCatalog.EXPECT().InvalidateSessions(gomock.Any())

		mockMailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))
		mockEvents.EXPECT().
			SendMessages(gomock.Any(), "booking.events", gomock.Any()).
			DoAndReturn(func(context.Context, string, ...any) error {
				close(notified)
				return errors.New("broker down")
			})

		bookingID, err := svc.Create(context.Background(), createRequest())

		assert.NoError(t, err)
		assert.NotEmpty(t, bookingID)

		<-notified
	})

	t.Run("primary call failure reports the error and skips notifications", func(t *testing.T) {
		mockCatalog.EXPECT().Activities(gomock.Any()).Return(fixtureActivities(), nil)
		mockCatalog.EXPECT().Spots(gomock.Any()).Return(fixtureSpots(), nil)
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("booking API unavailable"))

		_, err := svc.Create(context.Background(), createRequest())

		assert.Error(t, err)
	})

	t.Run("catalog failure aborts before submission", func(t *testing.T) {
		mockCatalog.EXPECT().Activities(gomock.Any()).Return(nil, errors.New("upstream unavailable"))

		_, err := svc.Create(context.Background(), createRequest())

		assert.Error(t, err)
	})

	t.Run("unresolvable selection aborts before submission", func(t *testing.T) {
		mockCatalog.EXPECT().Activities(gomock.Any()).Return(fixtureActivities(), nil)
		mockCatalog.EXPECT().Spots(gomock.Any()).Return(fixtureSpots(), nil)

		req := createRequest()
		req.ActivityID = "act-unknown"

		_, err := svc.Create(context.Background(), req)

		assert.Error(t, err)
	})
}

func TestReservationService_Join(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockCatalog := catalogMocks.NewMockCatalogService(ctrl)
	mockMailer := mailerMocks.NewMockMailer(ctrl)
	mockEvents := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockCatalog, testConfig(), mockMailer, mockEvents, mockOtel)

	t.Run("successful join", func(t *testing.T) {
		notified := make(chan struct{})

		mockCatalog.EXPECT().Session(gomock.Any(), "sess-1").Return(fixtureSession(5), nil)
		mockRepo.EXPECT().Join(gomock.Any(), gomock.Any()).Return(nil)
		mockCatalog.EXPECT().InvalidateSessions(gomock.Any())

		mockMailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
		mockEvents.EXPECT().
			SendMessages(gomock.Any(), "booking.events", gomock.Any()).
			DoAndReturn(func(context.Context, string, ...any) error {
				close(notified)
				return nil
			})

		bookingID, err := svc.Join(context.Background(), joinRequest(3))

		assert.NoError(t, err)
		assert.NotEmpty(t, bookingID)

		<-notified
	})

	t.Run("party larger than remaining places conflicts", func(t *testing.T) {
		mockCatalog.EXPECT().Session(gomock.Any(), "sess-1").Return(fixtureSession(7), nil)

		_, err := svc.Join(context.Background(), joinRequest(2))

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("unknown session", func(t *testing.T) {
		mockCatalog.EXPECT().
			Session(gomock.Any(), "sess-1").
			Return(catalogModel.Session{}, failure.NotFound("session not found"))

		_, err := svc.Join(context.Background(), joinRequest(1))

		assert.Error(t, err)
	})

	t.Run("join failure reports the error and skips notifications", func(t *testing.T) {
		mockCatalog.EXPECT().Session(gomock.Any(), "sess-1").Return(fixtureSession(0), nil)
		mockRepo.EXPECT().Join(gomock.Any(), gomock.Any()).Return(errors.New("booking API unavailable"))

		_, err := svc.Join(context.Background(), joinRequest(2))

		assert.Error(t, err)
	})
}
