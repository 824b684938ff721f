package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"emerald-ads/internal/core/domain"
	"emerald-ads/internal/core/port"
)

// SubmitRequest carries everything one submission needs. Draft is a
// snapshot taken when the user submitted; later edits do not affect it.
type SubmitRequest struct {
	Draft   domain.Draft
	Session domain.UserSession
	Errors  *domain.ValidationErrors

	// OnBalanceUpdate is called with the new absolute balance as soon as the
	// deduction is confirmed, before the campaign exists.
	OnBalanceUpdate func(ctx context.Context, balance decimal.Decimal)
	// OnSave is called once the campaign was stored.
	OnSave func()
}

// SubmitResult describes a successful submission.
type SubmitResult struct {
	Campaign    *domain.Campaign
	Created     bool
	NewBalance  *decimal.Decimal
	Reservation *uuid.UUID
}

// Submitter runs the submit workflow of one form: validate, reserve funds
// (create only), then persist. The deduction and the create are two
// separate backend calls with no transaction around them; a create failure
// after a successful deduction leaves the balance reduced with no campaign.
// That window is reported through SubmitError.FundsDeducted and recorded as
// an orphaned reservation in the journal.
type Submitter struct {
	backend port.CampaignBackend
	journal port.ReservationJournal
	logger  *slog.Logger

	mu         sync.Mutex
	submitting bool
	state      port.SubmitState
}

// NewSubmitter returns a submitter. journal may be nil.
func NewSubmitter(backend port.CampaignBackend, journal port.ReservationJournal, logger *slog.Logger) *Submitter {
	return &Submitter{backend: backend, journal: journal, logger: logger, state: port.SubmitIdle}
}

func (s *Submitter) Submitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitting
}

func (s *Submitter) State() port.SubmitState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Submitter) setState(st port.SubmitState) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

// Submit runs one submission to completion. Only one submission may be in
// flight; a second one fails with port.ErrSubmitInFlight. Once the funds
// sequence has started it ignores cancellation of ctx.
func (s *Submitter) Submit(ctx context.Context, req SubmitRequest) (res SubmitResult, err error) {
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return res, port.ErrSubmitInFlight
	}
	s.submitting = true
	s.state = port.SubmitValidating
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		if err != nil {
			s.state = port.SubmitFailed
		} else {
			s.state = port.SubmitSucceeded
		}
		s.submitting = false
		s.mu.Unlock()
	}()

	errs := req.Errors
	errs.Clear(domain.CategoryBalance, domain.CategoryBidAmount, domain.CategoryNetwork)

	d := req.Draft
	if d.MissingRequired() {
		return res, validationFailure(port.ErrRequiredFields, domain.MsgRequiredFields)
	}
	payload, err := d.Payload(req.Session.ID)
	if err != nil {
		return res, payloadFailure(err, errs)
	}

	ctx = context.WithoutCancel(ctx)

	var rsv *domain.Reservation
	if !d.Editing() {
		if payload.BidAmount.GreaterThan(payload.CampaignFund) {
			errs.Set(domain.CategoryBidAmount, domain.MsgBidExceedsFund)
			return res, validationFailure(port.ErrBidExceedsFund, domain.MsgBidExceedsFund)
		}
		balance := req.Session.AccountBalance
		if balance.LessThan(payload.CampaignFund) {
			errs.Set(domain.CategoryBalance, domain.MsgInsufficientBalance)
			return res, validationFailure(port.ErrInsufficientFunds, domain.MsgInsufficientBalance)
		}
		newBalance := balance.Sub(payload.CampaignFund)

		s.setState(port.SubmitReserving)
		rsv = s.begin(ctx, &domain.Reservation{
			ID:              uuid.New(),
			UserID:          req.Session.ID,
			CampaignName:    payload.Name,
			Amount:          payload.CampaignFund,
			PreviousBalance: balance,
			NewBalance:      newBalance,
		})
		if err = s.backend.UpdateBalance(ctx, req.Session.ID, newBalance); err != nil {
			s.logger.Error("reserve funds error", slog.Int64("user_id", req.Session.ID), slog.Any("error", err))
			s.transition(ctx, rsv, domain.ReservationAborted, err)
			return res, backendFailure(port.StageReservation, err, errs, false)
		}
		s.transition(ctx, rsv, domain.ReservationReserved, nil)
		if req.OnBalanceUpdate != nil {
			req.OnBalanceUpdate(ctx, newBalance)
		}
		res.NewBalance = &newBalance
		if rsv != nil {
			res.Reservation = &rsv.ID
		}
	}

	s.setState(port.SubmitPersisting)
	var stored *domain.Campaign
	if d.ID != nil {
		stored, err = s.backend.UpdateCampaign(ctx, *d.ID, payload)
	} else {
		stored, err = s.backend.CreateCampaign(ctx, payload)
	}
	var be *port.BackendError
	if errors.As(err, &be) && be.Accepted() {
		s.logger.Warn("campaign saved but the backend response could not be read",
			slog.Int64("user_id", req.Session.ID), slog.Any("error", err))
		err = nil
	}
	if err != nil {
		deducted := res.NewBalance != nil
		if deducted {
			s.logger.Warn("campaign create failed after funds were reserved",
				slog.Int64("user_id", req.Session.ID),
				slog.String("amount", payload.CampaignFund.String()),
				slog.Any("error", err))
			s.transition(ctx, rsv, domain.ReservationOrphaned, err)
		} else {
			s.logger.Error("save campaign error", slog.Any("error", err))
		}
		return SubmitResult{}, backendFailure(port.StagePersistence, err, errs, deducted)
	}
	s.transition(ctx, rsv, domain.ReservationCommitted, nil)

	if req.OnSave != nil {
		req.OnSave()
	}
	res.Campaign = stored
	res.Created = d.ID == nil
	return res, nil
}

func (s *Submitter) begin(ctx context.Context, r *domain.Reservation) *domain.Reservation {
	if s.journal == nil {
		return nil
	}
	if err := s.journal.Begin(ctx, r); err != nil {
		s.logger.Error("journal reservation error", slog.String("reservation_id", r.ID.String()), slog.Any("error", err))
		return nil
	}
	return r
}

func (s *Submitter) transition(ctx context.Context, r *domain.Reservation, state domain.ReservationState, cause error) {
	if s.journal == nil || r == nil {
		return
	}
	failure := ""
	if cause != nil {
		failure = cause.Error()
	}
	if err := s.journal.Transition(ctx, r.ID, state, failure); err != nil {
		s.logger.Error("journal transition error",
			slog.String("reservation_id", r.ID.String()),
			slog.String("state", string(state)),
			slog.Any("error", err))
		return
	}
	r.State = state
	r.Failure = failure
}

func validationFailure(err error, msg string) *port.SubmitError {
	return &port.SubmitError{Stage: port.StageValidation, Message: msg, Err: err}
}

func payloadFailure(err error, errs *domain.ValidationErrors) *port.SubmitError {
	switch {
	case errors.Is(err, domain.ErrInvalidBid):
		errs.Set(domain.CategoryBidAmount, domain.MsgInvalidBid)
		return validationFailure(err, domain.MsgInvalidBid)
	case errors.Is(err, domain.ErrInvalidFund):
		errs.Set(domain.CategoryBalance, domain.MsgInvalidFund)
		return validationFailure(err, domain.MsgInvalidFund)
	default:
		return validationFailure(err, domain.MsgInvalidRadius)
	}
}

// backendFailure picks the user-facing message: the server's own message
// when there is one, the connectivity message when the request never got a
// response, and a generic one otherwise.
func backendFailure(stage port.SubmitStage, err error, errs *domain.ValidationErrors, deducted bool) *port.SubmitError {
	msg := "Error: " + err.Error()
	var be *port.BackendError
	if errors.As(err, &be) {
		switch {
		case be.Unreachable:
			msg = domain.MsgConnectivity
			errs.Set(domain.CategoryNetwork, domain.MsgConnectivity)
		case be.Message != "":
			msg = "Error: " + be.Message
		}
	}
	return &port.SubmitError{Stage: stage, Message: msg, FundsDeducted: deducted, Err: err}
}
