package queries

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"cospace-api/internal/infra"
	"cospace-api/internal/pkg/errs"
)

var (
	ErrMembershipNotFound     = errors.New("membership not found")
	ErrBenefitNotFound        = errors.New("virtual office benefit not found")
	ErrEntitlementQueryFailed = errors.New("failed to query entitlements")
)

type MembershipReadStore interface {
	FindActive(ctx context.Context, userID, categoryID uuid.UUID, now time.Time) (*MembershipView, error)
}

type BenefitReadStore interface {
	FindForDate(ctx context.Context, userID uuid.UUID, day time.Time) (*BenefitView, error)
}

type EntitlementQueries interface {
	MembershipFor(ctx context.Context, userID, categoryID uuid.UUID, now time.Time) (*MembershipView, error)
	BenefitFor(ctx context.Context, userID uuid.UUID, day time.Time) (*BenefitView, error)
}

type entitlementQueriesImpl struct {
	memberships MembershipReadStore
	benefits    BenefitReadStore
}

func NewEntitlementQueries(memberships MembershipReadStore, benefits BenefitReadStore) EntitlementQueries {
	return &entitlementQueriesImpl{memberships: memberships, benefits: benefits}
}

func (q *entitlementQueriesImpl) MembershipFor(ctx context.Context, userID, categoryID uuid.UUID, now time.Time) (*MembershipView, error) {
	view, err := q.memberships.FindActive(ctx, userID, categoryID, now)
	if err != nil {
		if infra.IsKind(err, infra.NotFound) {
			return nil, errs.Mark(err, ErrMembershipNotFound)
		}
		return nil, errs.Mark(err, ErrEntitlementQueryFailed)
	}
	return view, nil
}

func (q *entitlementQueriesImpl) BenefitFor(ctx context.Context, userID uuid.UUID, day time.Time) (*BenefitView, error) {
	view, err := q.benefits.FindForDate(ctx, userID, day)
	if err != nil {
		if infra.IsKind(err, infra.NotFound) {
			return nil, errs.Mark(err, ErrBenefitNotFound)
		}
		return nil, errs.Mark(err, ErrEntitlementQueryFailed)
	}
	return view, nil
}
