package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/JoelCaquene/saudi-aramco/internal/domain/entities"
)

type teamServiceStub struct {
	summaryFn func(ctx context.Context, userID uuid.UUID) (*entities.TeamSummary, error)
}

func (s *teamServiceStub) Summary(ctx context.Context, userID uuid.UUID) (*entities.TeamSummary, error) {
	return s.summaryFn(ctx, userID)
}

type incomeServiceStub struct {
	summaryFn func(ctx context.Context, userID uuid.UUID) (*entities.IncomeSummary, error)
}

func (s *incomeServiceStub) Summary(ctx context.Context, userID uuid.UUID) (*entities.IncomeSummary, error) {
	return s.summaryFn(ctx, userID)
}

func TestTeamHandler_Summary(t *testing.T) {
	userID := uuid.New()
	teamStub := &teamServiceStub{
		summaryFn: func(_ context.Context, id uuid.UUID) (*entities.TeamSummary, error) {
			require.Equal(t, userID, id)
			member := &entities.TeamMember{PhoneNumber: "900000002", ClassName: entities.ReferralClassA}
			return &entities.TeamSummary{
				Members:     []*entities.TeamMember{member},
				TeamCount:   1,
				ClassA:      []*entities.TeamMember{member},
				TotalClassA: 1,
				InviteLink:  "https://example.com/register?invite=abcd1234",
				InviteCode:  "abcd1234",
			}, nil
		},
	}
	h := NewTeamHandler(teamStub, &incomeServiceStub{})

	r := newTestRouter(&userID)
	r.GET("/team", h.Summary)

	w := doJSON(t, r, http.MethodGet, "/team", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	require.Equal(t, float64(1), body["teamCount"])
	require.Equal(t, "abcd1234", body["inviteCode"])
}

func TestTeamHandler_Income(t *testing.T) {
	userID := uuid.New()
	incomeStub := &incomeServiceStub{
		summaryFn: func(_ context.Context, id uuid.UUID) (*entities.IncomeSummary, error) {
			return &entities.IncomeSummary{
				AvailableBalance: decimal.RequireFromString("120.00"),
				SubsidyBalance:   decimal.RequireFromString("45.00"),
				TotalIncome:      decimal.RequireFromString("195.00"),
			}, nil
		},
	}
	h := NewTeamHandler(&teamServiceStub{}, incomeStub)

	r := newTestRouter(&userID)
	r.GET("/income", h.Income)

	w := doJSON(t, r, http.MethodGet, "/income", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "195")

	t.Run("unauthenticated", func(t *testing.T) {
		bare := newTestRouter(nil)
		bare.GET("/income", h.Income)
		w := doJSON(t, bare, http.MethodGet, "/income", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
