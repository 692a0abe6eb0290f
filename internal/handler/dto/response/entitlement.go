package response

import (
	"time"

	"github.com/google/uuid"

	"cospace-api/internal/usecase/queries"
)

type MembershipResponse struct {
	ID              uuid.UUID  `json:"id"`
	CategoryID      uuid.UUID  `json:"categoryId"`
	RemainingCredit int        `json:"remainingCredit"`
	ExpiresAt       *time.Time `json:"expiresAt,omitempty"`
}

type BenefitResponse struct {
	ID                uuid.UUID `json:"id"`
	MeetingRoomHours  int       `json:"meetingRoomHours"`
	WorkingSpaceHours int       `json:"workingSpaceHours"`
}

func FromMembershipView(view *queries.MembershipView) *MembershipResponse {
	return &MembershipResponse{
		ID:              view.ID,
		CategoryID:      view.CategoryID,
		RemainingCredit: view.RemainingCredit,
		ExpiresAt:       view.ExpiresAt,
	}
}

func FromBenefitView(view *queries.BenefitView) *BenefitResponse {
	return &BenefitResponse{
		ID:                view.ID,
		MeetingRoomHours:  view.MeetingRoomHours,
		WorkingSpaceHours: view.WorkingSpaceHours,
	}
}
