package budgetService

import (
	"strings"
	"time"

	"FinanceGolang/internal/api/budget"
	"FinanceGolang/internal/entity"
	"FinanceGolang/pkg/money"
	"FinanceGolang/pkg/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *budgetService) GetGoals(ctx context.Context, userID string, rawSection string) ([]budget.GoalResponse, error) {
	section := strings.TrimSpace(rawSection)
	if section != "" && !entity.IsValidSection(section) {
		return nil, budget.ErrInvalidSection
	}

	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to create budget repository client")
		return nil, err
	}

	goals, err := repo.Goal.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]budget.GoalResponse, 0, len(goals))
	for _, g := range goals {
		if section != "" && g.Section != entity.Section(section) {
			continue
		}
		result = append(result, makeGoalResponse(g))
	}

	return result, nil
}

func (s *budgetService) CreateGoal(ctx context.Context, req budget.CreateGoalRequest) (budget.GoalResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return budget.GoalResponse{}, budget.ErrEmptyGoalName
	}
	if !entity.IsValidGoalType(req.Type) {
		return budget.GoalResponse{}, budget.ErrInvalidGoalType
	}
	if req.Section != "" && !entity.IsValidSection(req.Section) {
		return budget.GoalResponse{}, budget.ErrInvalidSection
	}
	if req.MonthFrom != "" && !utils.IsValidMonth(req.MonthFrom) {
		return budget.GoalResponse{}, budget.ErrInvalidMonthFormat
	}
	if req.MonthTo != "" && !utils.IsValidMonth(req.MonthTo) {
		return budget.GoalResponse{}, budget.ErrInvalidMonthFormat
	}

	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to create budget repository client")
		return budget.GoalResponse{}, err
	}

	goal := entity.Goal{
		ID:           uuid.NewString(),
		UserID:       req.UserID,
		Name:         name,
		Type:         entity.GoalType(req.Type),
		TargetAmount: money.Amount(req.TargetAmount),
		Section:      entity.Section(req.Section),
		MonthFrom:    req.MonthFrom,
		MonthTo:      req.MonthTo,
		IsDone:       false,
		CreatedAt:    time.Now(),
	}

	if err := repo.Goal.Create(ctx, goal); err != nil {
		return budget.GoalResponse{}, err
	}

	return makeGoalResponse(goal), nil
}

func (s *budgetService) UpdateGoal(ctx context.Context, req budget.UpdateGoalRequest) (budget.GoalResponse, error) {
	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to create budget repository client")
		return budget.GoalResponse{}, err
	}

	existing, err := repo.Goal.FindByID(ctx, req.ID)
	if err != nil {
		return budget.GoalResponse{}, err
	}
	if existing.UserID != req.UserID {
		return budget.GoalResponse{}, budget.ErrGoalNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return budget.GoalResponse{}, budget.ErrEmptyGoalName
		}
		existing.Name = name
	}
	if req.TargetAmount != nil {
		existing.TargetAmount = money.Amount(*req.TargetAmount)
	}
	if req.Section != nil {
		if *req.Section != "" && !entity.IsValidSection(*req.Section) {
			return budget.GoalResponse{}, budget.ErrInvalidSection
		}
		existing.Section = entity.Section(*req.Section)
	}
	if req.MonthFrom != nil {
		if *req.MonthFrom != "" && !utils.IsValidMonth(*req.MonthFrom) {
			return budget.GoalResponse{}, budget.ErrInvalidMonthFormat
		}
		existing.MonthFrom = *req.MonthFrom
	}
	if req.MonthTo != nil {
		if *req.MonthTo != "" && !utils.IsValidMonth(*req.MonthTo) {
			return budget.GoalResponse{}, budget.ErrInvalidMonthFormat
		}
		existing.MonthTo = *req.MonthTo
	}
	if req.IsDone != nil {
		existing.IsDone = *req.IsDone
	}

	if err := repo.Goal.Save(ctx, existing); err != nil {
		return budget.GoalResponse{}, err
	}

	return makeGoalResponse(existing), nil
}

func (s *budgetService) DeleteGoal(ctx context.Context, goalID, userID string) error {
	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to create budget repository client")
		return err
	}

	existing, err := repo.Goal.FindByID(ctx, goalID)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return budget.ErrGoalNotFound
	}

	return repo.Goal.Delete(ctx, goalID)
}

func makeGoalResponse(g entity.Goal) budget.GoalResponse {
	return budget.GoalResponse{
		ID:           g.ID,
		UserID:       g.UserID,
		Name:         g.Name,
		Type:         string(g.Type),
		TargetAmount: money.ToFloat(g.TargetAmount),
		Section:      string(g.Section),
		MonthFrom:    g.MonthFrom,
		MonthTo:      g.MonthTo,
		IsDone:       g.IsDone,
		CreatedAt:    g.CreatedAt.Format(time.RFC3339),
	}
}
