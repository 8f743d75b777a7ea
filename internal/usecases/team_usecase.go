package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/JoelCaquene/saudi-aramco/internal/config"
	"github.com/JoelCaquene/saudi-aramco/internal/domain/entities"
	domainerrors "github.com/JoelCaquene/saudi-aramco/internal/domain/errors"
	"github.com/JoelCaquene/saudi-aramco/internal/domain/repositories"
)

// TeamUsecase builds the referral team page
type TeamUsecase struct {
	userRepo      repositories.UserRepository
	userLevelRepo repositories.UserLevelRepository
	taskRepo      repositories.TaskRepository
	business      config.BusinessConfig
}

// NewTeamUsecase creates a new team usecase
func NewTeamUsecase(
	userRepo repositories.UserRepository,
	userLevelRepo repositories.UserLevelRepository,
	taskRepo repositories.TaskRepository,
	business config.BusinessConfig,
) *TeamUsecase {
	return &TeamUsecase{
		userRepo:      userRepo,
		userLevelRepo: userLevelRepo,
		taskRepo:      taskRepo,
		business:      business,
	}
}

// Summary lists the user's direct referrals enriched with their active
// level and referral class, grouped by class tier.
func (u *TeamUsecase) Summary(ctx context.Context, userID uuid.UUID) (*entities.TeamSummary, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	referrals, err := u.userRepo.ListByReferrer(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &entities.TeamSummary{
		Members:    make([]*entities.TeamMember, 0, len(referrals)),
		TeamCount:  len(referrals),
		ClassA:     []*entities.TeamMember{},
		ClassB:     []*entities.TeamMember{},
		ClassC:     []*entities.TeamMember{},
		InviteLink: u.business.InviteBaseURL + "?invite=" + user.InviteCode,
		InviteCode: user.InviteCode,
	}

	for _, member := range referrals {
		entry, err := u.describeMember(ctx, member)
		if err != nil {
			return nil, err
		}
		summary.Members = append(summary.Members, entry)

		switch entry.ClassName {
		case entities.ReferralClassA:
			summary.ClassA = append(summary.ClassA, entry)
		case entities.ReferralClassB:
			summary.ClassB = append(summary.ClassB, entry)
		case entities.ReferralClassC:
			summary.ClassC = append(summary.ClassC, entry)
		}
	}

	summary.TotalClassA = len(summary.ClassA)
	summary.TotalClassB = len(summary.ClassB)
	summary.TotalClassC = len(summary.ClassC)
	return summary, nil
}

func (u *TeamUsecase) describeMember(ctx context.Context, member *entities.User) (*entities.TeamMember, error) {
	entry := &entities.TeamMember{
		PhoneNumber: member.PhoneNumber,
		DateJoined:  member.DateJoined,
		IsActive:    member.LevelActive,
		LevelName:   "N/A",
		ClassName:   entities.ReferralClassNone,
	}

	active, err := u.userLevelRepo.GetActive(ctx, member.ID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if active != nil && active.Level != nil {
		entry.LevelName = active.Level.Name
		entry.LevelOrdinal = active.Level.Ordinal
		entry.ClassName, entry.SubsidyRate = entities.ResolveReferralClass(active.Level.Ordinal)
	}

	last, err := u.taskRepo.LastByUser(ctx, member.ID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if last != nil {
		entry.LastTaskTime = &last.CompletedAt
	}
	return entry, nil
}
