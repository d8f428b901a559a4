package usecase

import (
	"context"
	"errors"
	"time"

	"booking-platform/internal/domain/schedule"
	"booking-platform/internal/infra"
	"booking-platform/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRuleNotFound  = errors.New("rule not found")
	ErrDuplicateRule = errors.New("a rule already exists for this scope")

	// Error markers for categorization
	ErrDomainValidationFailed  = errors.New("domain validation failed")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

type RuleRepository interface {
	RuleReader
	CreateDefault(ctx context.Context, rule *schedule.DefaultRule) error
	UpdateDefault(ctx context.Context, rule *schedule.DefaultRule) error
	DeleteDefault(ctx context.Context, id uuid.UUID) error
	FindDefaultByID(ctx context.Context, id uuid.UUID) (*schedule.DefaultRule, error)
	CreateCustom(ctx context.Context, rule *schedule.CustomRule) error
	UpdateCustom(ctx context.Context, rule *schedule.CustomRule) error
	DeleteCustom(ctx context.Context, id uuid.UUID) error
}

type RuleUseCase interface {
	CreateDefaultRule(ctx context.Context, weekday schedule.Weekday, month *int, rule schedule.Rule) (*schedule.DefaultRule, error)
	UpdateDefaultRule(ctx context.Context, id uuid.UUID, weekday schedule.Weekday, month *int, rule schedule.Rule) (*schedule.DefaultRule, error)
	DeleteDefaultRule(ctx context.Context, id uuid.UUID) error
	CreateCustomRule(ctx context.Context, date time.Time, rule schedule.Rule) (*schedule.CustomRule, error)
	UpdateCustomRule(ctx context.Context, id uuid.UUID, date time.Time, rule schedule.Rule) (*schedule.CustomRule, error)
	DeleteCustomRule(ctx context.Context, id uuid.UUID) error
}

type ruleUseCaseImpl struct {
	rules RuleRepository
}

func NewRuleUseCase(rules RuleRepository) RuleUseCase {
	return &ruleUseCaseImpl{rules: rules}
}

func (u *ruleUseCaseImpl) CreateDefaultRule(ctx context.Context, weekday schedule.Weekday, month *int, rule schedule.Rule) (*schedule.DefaultRule, error) {
	entity, err := schedule.NewDefaultRule(weekday, month, rule)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}
	if err := u.rules.CreateDefault(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateRule
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return u.findDefault(ctx, entity.ID)
}

func (u *ruleUseCaseImpl) UpdateDefaultRule(ctx context.Context, id uuid.UUID, weekday schedule.Weekday, month *int, rule schedule.Rule) (*schedule.DefaultRule, error) {
	entity, err := schedule.NewDefaultRule(weekday, month, rule)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}
	entity.ID = id

	if err := u.rules.UpdateDefault(ctx, entity); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrRuleNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrDuplicateRule
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return u.findDefault(ctx, id)
}

func (u *ruleUseCaseImpl) DeleteDefaultRule(ctx context.Context, id uuid.UUID) error {
	if err := u.rules.DeleteDefault(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRuleNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *ruleUseCaseImpl) CreateCustomRule(ctx context.Context, date time.Time, rule schedule.Rule) (*schedule.CustomRule, error) {
	entity, err := schedule.NewCustomRule(date, rule)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}
	if err := u.rules.CreateCustom(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateRule
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity, nil
}

func (u *ruleUseCaseImpl) UpdateCustomRule(ctx context.Context, id uuid.UUID, date time.Time, rule schedule.Rule) (*schedule.CustomRule, error) {
	entity, err := schedule.NewCustomRule(date, rule)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}
	entity.ID = id

	if err := u.rules.UpdateCustom(ctx, entity); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrRuleNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrDuplicateRule
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return entity, nil
}

func (u *ruleUseCaseImpl) DeleteCustomRule(ctx context.Context, id uuid.UUID) error {
	if err := u.rules.DeleteCustom(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRuleNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *ruleUseCaseImpl) findDefault(ctx context.Context, id uuid.UUID) (*schedule.DefaultRule, error) {
	stored, err := u.rules.FindDefaultByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRuleNotFound
		}
		return nil, errs.Wrap(err, "failed to find default rule")
	}
	return stored, nil
}
