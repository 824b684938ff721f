package port

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"emerald-ads/internal/core/domain"
)

var (
	ErrFormNotFound      = errors.New("form not found")
	ErrSubmitInFlight    = errors.New("a submission is already in progress")
	ErrRequiredFields    = errors.New("required fields missing")
	ErrBidExceedsFund    = errors.New("bid amount exceeds campaign fund")
	ErrInsufficientFunds = errors.New("insufficient account balance")
)

// FormUseCase defines the operations exposed to the HTTP layer. Each form is
// one mounted campaign editor owned by a single user session.
type FormUseCase interface {
	// Open mounts a form for userID. A nil campaign opens it in create
	// mode; otherwise the campaign is loaded for editing. The town catalog
	// is loaded before Open returns; a catalog failure is reported on the
	// form, not as an error.
	Open(ctx context.Context, userID int64, campaign *domain.Campaign) (*FormView, error)
	Get(id uuid.UUID) (*FormView, error)
	Close(id uuid.UUID) error

	SetField(id uuid.UUID, field domain.Field, value string) (*FormView, error)
	SetTown(id uuid.UUID, town string) (*FormView, error)

	// KeywordInput records free text typed into the keyword box and
	// (re)schedules a suggestion lookup.
	KeywordInput(id uuid.UUID, text string) (*FormView, error)
	// AddKeyword adds the typed keyword text to the tag set.
	AddKeyword(id uuid.UUID) (*FormView, error)
	// SelectKeyword adds a keyword picked from the suggestions.
	SelectKeyword(id uuid.UUID, keyword string) (*FormView, error)
	RemoveKeyword(id uuid.UUID, keyword string) (*FormView, error)

	// Submit validates the draft, reserves funds for new campaigns and
	// persists the campaign. The returned view reflects the settled form
	// even when an error is returned.
	Submit(ctx context.Context, id uuid.UUID) (*FormView, error)
	// Deselect drops an in-progress edit and returns to create mode.
	Deselect(id uuid.UUID) (*FormView, error)

	ListCampaigns(ctx context.Context, userID int64) ([]domain.Campaign, error)
	PutSession(ctx context.Context, s domain.UserSession) error
	ListReservations(ctx context.Context, state domain.ReservationState, limit int) ([]domain.Reservation, error)
}

// SubmitState is the orchestrator state of a form.
type SubmitState string

const (
	SubmitIdle       SubmitState = "idle"
	SubmitValidating SubmitState = "validating"
	SubmitReserving  SubmitState = "reserving"
	SubmitPersisting SubmitState = "persisting"
	SubmitSucceeded  SubmitState = "succeeded"
	SubmitFailed     SubmitState = "failed"
)

// SubmitStage names where a submission failed.
type SubmitStage string

const (
	StageValidation  SubmitStage = "validation"
	StageReservation SubmitStage = "reservation"
	StagePersistence SubmitStage = "persistence"
)

// SubmitError is returned by a failed submission. Message is what the user
// is shown. FundsDeducted is true when the failure happened after the
// balance deduction succeeded, i.e. inside the window where the balance no
// longer matches the campaigns that exist.
type SubmitError struct {
	Stage         SubmitStage
	Message       string
	FundsDeducted bool
	Err           error
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("submit %s: %s", e.Stage, e.Message)
}

func (e *SubmitError) Unwrap() error { return e.Err }

// FormView is the presentation snapshot of a form. It is a DTO for the HTTP
// layer and carries no behaviour.
type FormView struct {
	ID            uuid.UUID                        `json:"id"`
	UserID        int64                            `json:"userId"`
	Editing       bool                             `json:"editing"`
	Draft         DraftView                        `json:"draft"`
	KeywordInput  string                           `json:"keywordInput"`
	Suggestions   []string                         `json:"suggestions"`
	Towns         []domain.TownOption              `json:"towns"`
	SelectedTown  *domain.TownOption               `json:"selectedTown"`
	Loading       LoadingView                      `json:"loading"`
	Errors        map[domain.ErrorCategory]*string `json:"errors"`
	State         SubmitState                      `json:"state"`
	SavedRevision int                              `json:"savedRevision"`
	Balance       *decimal.Decimal                 `json:"balance,omitempty"`
}

type DraftView struct {
	ID           *int64            `json:"id,omitempty"`
	Name         string            `json:"name"`
	Keywords     domain.KeywordSet `json:"keywords"`
	BidAmount    string            `json:"bidAmount"`
	CampaignFund string            `json:"campaignFund"`
	Status       bool              `json:"status"`
	Town         string            `json:"town"`
	Radius       string            `json:"radius"`
}

type LoadingView struct {
	Towns    bool `json:"towns"`
	Keywords bool `json:"keywords"`
	Submit   bool `json:"submit"`
}
