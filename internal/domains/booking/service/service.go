package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"workbrew/config"
	"workbrew/infras/kafka"
	"workbrew/infras/otel"
	"workbrew/internal/domains/booking/draft"
	"workbrew/internal/domains/booking/model"
	"workbrew/internal/domains/booking/model/dto"
	"workbrew/internal/domains/booking/repository"
	catalogRepo "workbrew/internal/domains/catalog/repository"
	"workbrew/shared"
	"workbrew/shared/cache"
	"workbrew/shared/constant"
	gDto "workbrew/shared/dto"
	"workbrew/shared/failure"
	"workbrew/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	sessionPrefix = "booking:session"

	cacheGetReservation    = "reservation:get"
	cacheGetAllReservation = "reservation:gets"
	cacheCountReservation  = "reservation:count"
)

type Booking interface {
	CreateSession(ctx context.Context, req dto.CreateSessionRequest) (dto.SessionResponse, error)
	GetSession(ctx context.Context, sessionID string) (dto.SessionResponse, error)
	SelectDate(ctx context.Context, sessionID string, req dto.SelectDateRequest) (dto.SessionResponse, error)
	SelectSlot(ctx context.Context, sessionID string, req dto.SelectSlotRequest) (dto.SessionResponse, error)
	SetDetails(ctx context.Context, sessionID string, req dto.DetailsRequest) (dto.SessionResponse, error)
	Next(ctx context.Context, sessionID string) (dto.SessionResponse, error)
	Back(ctx context.Context, sessionID string) (dto.SessionResponse, error)
	Submit(ctx context.Context, sessionID string) (dto.ReservationResponse, error)
	ListReservations(ctx context.Context, params gDto.QueryParams, filter dto.ListReservationsFilter) (dto.GetReservationsResponse, error)
	GetReservation(ctx context.Context, id string) (dto.ReservationResponse, error)
	CancelReservation(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Reservation
	catalog   catalogRepo.Catalog
	cache     cache.RedisCache
	kafka     kafka.Client
	confirmer Confirmer
	cfg       *config.Config
	otel      otel.Otel
	now       func() time.Time
	rnd       *rand.Rand
}

func New(
	repo repository.Reservation,
	catalog catalogRepo.Catalog,
	redisCache cache.RedisCache,
	kafkaClient kafka.Client,
	confirmer Confirmer,
	cfg *config.Config,
	otl otel.Otel,
	rnd *rand.Rand,
) Booking {
	return &serviceImpl{
		repo:      repo,
		catalog:   catalog,
		cache:     redisCache,
		kafka:     kafkaClient,
		confirmer: confirmer,
		cfg:       cfg,
		otel:      otl,
		now:       timezone.Now,
		rnd:       rnd,
	}
}

func (s *serviceImpl) CreateSession(ctx context.Context, req dto.CreateSessionRequest) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateSession")
	defer scope.End()
	defer scope.TraceIfError(err)

	cafe, ok := s.catalog.Get(ctx, req.CafeID)
	if !ok {
		return res, failure.NotFound("cafe not found") //nolint:wrapcheck
	}

	sessionID := uuid.NewString()
	d := draft.New(cafe.ID, cafe.Name)

	if err = s.saveSession(ctx, sessionID, d); err != nil {
		return res, err
	}

	log.Info().Str("sessionID", sessionID).Str("cafeID", cafe.ID).Msg("booking session created")

	res.FromDraft(sessionID, d)

	return res, nil
}

func (s *serviceImpl) GetSession(ctx context.Context, sessionID string) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSession")
	defer scope.End()
	defer scope.TraceIfError(err)

	d, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return res, err
	}

	res.FromDraft(sessionID, d)

	return res, nil
}

func (s *serviceImpl) SelectDate(ctx context.Context, sessionID string, req dto.SelectDateRequest) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SelectDate")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.apply(ctx, sessionID, draft.SelectDate{
		Date:  req.Date,
		Today: s.now(),
		Generate: func() []draft.Slot {
			return generateSlots(s.rnd, s.cfg.Booking.AvailabilityRate)
		},
	})
}

func (s *serviceImpl) SelectSlot(ctx context.Context, sessionID string, req dto.SelectSlotRequest) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SelectSlot")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.apply(ctx, sessionID, draft.SelectSlot{Time: req.Time})
}

func (s *serviceImpl) SetDetails(ctx context.Context, sessionID string, req dto.DetailsRequest) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetDetails")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.apply(ctx, sessionID, draft.SetDetails{
		Duration:        req.DurationHours,
		Guests:          req.GuestCount,
		TableType:       req.TableType,
		SpecialRequests: req.SpecialRequests,
		Contact: draft.Contact{
			Name:  req.Contact.Name,
			Email: req.Contact.Email,
			Phone: req.Contact.Phone,
		},
	})
}

func (s *serviceImpl) Next(ctx context.Context, sessionID string) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Next")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.apply(ctx, sessionID, draft.Next{})
}

func (s *serviceImpl) Back(ctx context.Context, sessionID string) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Back")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.apply(ctx, sessionID, draft.Back{})
}

// Submit confirms a draft that reached the payment step. The confirmer runs
// before anything is written: a cancelled or failed confirmation leaves the
// session untouched on the payment step.
func (s *serviceImpl) Submit(ctx context.Context, sessionID string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	d, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return res, err
	}

	confirmed, err := draft.Apply(d, draft.Confirm{})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = s.confirmer.Confirm(ctx, sessionID); err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Msg("booking confirmation failed")

		return res, err //nolint:wrapcheck
	}

	reservation := dto.ReservationFromDraft(d)

	if err = s.repo.Insert(ctx, reservation); err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = s.saveSession(ctx, sessionID, confirmed); err != nil {
		return res, err
	}

	s.publishConfirmed(ctx, reservation)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
	}()

	log.Info().
		Str("sessionID", sessionID).
		Str("reservationID", reservation.ID).
		Int("totalPrice", reservation.TotalPrice).
		Msg("booking confirmed")

	res.FromModel(reservation)

	return res, nil
}

func (s *serviceImpl) ListReservations(ctx context.Context, params gDto.QueryParams, filter dto.ListReservationsFilter) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListReservations")
	defer scope.End()
	defer scope.TraceIfError(err)

	filterGroup := buildReservationFilter(filter)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReservation, params, filterGroup)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	total, err := s.countReservations(ctx, params, filterGroup)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, params, filterGroup)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) countReservations(ctx context.Context, params gDto.QueryParams, filterGroup gDto.FilterGroup) (res int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountReservation, params, filterGroup)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filterGroup)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetReservation(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetReservation")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetReservation, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation")

		return res, nil
	}

	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return res, failure.NotFound("reservation not found") //nolint:wrapcheck
	}

	res.FromModel(reservation)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation to cache")
		}
	}()

	return res, nil
}

// CancelReservation flips a reservation to cancelled. It keeps the row so the
// history endpoint still lists it.
func (s *serviceImpl) CancelReservation(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelReservation")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if reservation exists")

		return fmt.Errorf("failed to check if reservation exists: %w", err)
	}

	if !exist {
		return failure.NotFound("reservation not found") //nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStatus:        model.StatusCancelled,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: constant.SystemActor,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to cancel reservation")

		return fmt.Errorf("failed to cancel reservation: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetReservation, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete reservation cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
	}()

	return nil
}

func (s *serviceImpl) apply(ctx context.Context, sessionID string, ev draft.Event) (res dto.SessionResponse, err error) {
	d, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return res, err
	}

	next, err := draft.Apply(d, ev)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = s.saveSession(ctx, sessionID, next); err != nil {
		return res, err
	}

	res.FromDraft(sessionID, next)

	return res, nil
}

func (s *serviceImpl) loadSession(ctx context.Context, sessionID string) (d draft.Draft, err error) {
	err = s.cache.Get(ctx, shared.BuildCacheKey(sessionPrefix, sessionID), &d)
	if err != nil {
		return d, failure.NotFound("booking session not found") //nolint:wrapcheck
	}

	return d, nil
}

func (s *serviceImpl) saveSession(ctx context.Context, sessionID string, d draft.Draft) error {
	err := s.cache.Save(ctx, shared.BuildCacheKey(sessionPrefix, sessionID), d, s.cfg.Booking.SessionTTLSeconds)
	if err != nil {
		return fmt.Errorf("failed to save booking session: %w", err)
	}

	return nil
}

func (s *serviceImpl) publishConfirmed(ctx context.Context, reservation model.Reservation) {
	var event dto.ReservationConfirmedEvent

	event.FromModel(reservation)

	go func() {
		c := context.WithoutCancel(ctx)

		err := s.kafka.SendMessages(c, s.cfg.Kafka.Topic.ReservationConfirmed, kafka.Message{
			Key:   reservation.ID,
			Value: event,
		})
		if err != nil {
			log.Error().Err(err).Str("reservationID", reservation.ID).Msg("failed to publish reservation confirmed event")
		}
	}()
}

func buildReservationFilter(filter dto.ListReservationsFilter) gDto.FilterGroup {
	filters := []any{}

	if filter.CafeID != constant.Empty {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldCafeID,
			Value:    filter.CafeID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	if filter.Date != constant.Empty {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldBookingDate,
			Value:    filter.Date,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	return gDto.FilterGroup{
		Filters:  filters,
		Operator: gDto.FilterGroupOperatorAnd,
	}
}
