package relation

import (
	"context"
	"errors"
	"foodgram/domain"
	"foodgram/pkg/recipe"
	"foodgram/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RelationService interface {
		Activate(ctx context.Context, subjectID, objectID string, kind Kind) (domain.RelationView, error)
		Deactivate(ctx context.Context, subjectID, objectID string, kind Kind) error
	}

	relationService struct {
		relationRepository RelationRepository
		recipeRepository   recipe.RecipeRepository
		userService        user.UserService
	}
)

func NewRelationService(relationRepository RelationRepository, recipeRepository recipe.RecipeRepository, userService user.UserService) RelationService {
	return &relationService{
		relationRepository: relationRepository,
		recipeRepository:   recipeRepository,
		userService:        userService,
	}
}

// Activate creates the (subject, object) relation. It is create-only, not an
// upsert: an existing pair fails with the kind's duplicate error. The
// pre-check is advisory; the unique index settles concurrent activations and
// a losing insert surfaces as the same duplicate error.
func (s *relationService) Activate(ctx context.Context, subjectID, objectID string, kind Kind) (domain.RelationView, error) {
	spec, ok := kindSpecs[kind]
	if !ok {
		return domain.RelationView{}, domain.ErrUserNotAllowed
	}

	subjectUUID, err := uuid.Parse(subjectID)
	if err != nil {
		return domain.RelationView{}, domain.ErrParseUUID
	}
	objectUUID, err := uuid.Parse(objectID)
	if err != nil {
		return domain.RelationView{}, domain.ErrParseUUID
	}

	view := domain.RelationView{}
	if spec.objectIsUser {
		if subjectID == objectID {
			return domain.RelationView{}, domain.ErrSelfSubscribe
		}
		summary, err := s.userService.BuildSubscription(ctx, objectID)
		if err != nil {
			return domain.RelationView{}, err
		}
		view.Subscription = &summary
	} else {
		target, err := s.recipeRepository.GetRecipeByID(ctx, objectID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.RelationView{}, domain.ErrRecipeNotFound
			}
			return domain.RelationView{}, err
		}
		view.Recipe = &domain.RecipeShortInfo{
			ID:          target.ID.String(),
			Name:        target.Name,
			ImageURL:    target.ImageURL,
			CookingTime: target.CookingTime,
		}
	}

	exists, err := s.relationRepository.Exists(ctx, kind, subjectID, objectID)
	if err != nil {
		return domain.RelationView{}, err
	}
	if exists {
		return domain.RelationView{}, spec.errDuplicate
	}

	if err := s.relationRepository.Create(ctx, kind, subjectUUID, objectUUID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.RelationView{}, spec.errDuplicate
		}
		return domain.RelationView{}, err
	}

	return view, nil
}

// Deactivate removes the relation. A pair that was never created (or was
// already removed) reports the kind's not-found error; the delete itself
// never fails on zero rows.
func (s *relationService) Deactivate(ctx context.Context, subjectID, objectID string, kind Kind) error {
	spec, ok := kindSpecs[kind]
	if !ok {
		return domain.ErrUserNotAllowed
	}

	if _, err := uuid.Parse(objectID); err != nil {
		return domain.ErrParseUUID
	}

	exists, err := s.relationRepository.Exists(ctx, kind, subjectID, objectID)
	if err != nil {
		return err
	}
	if !exists {
		return spec.errNotFound
	}

	return s.relationRepository.Delete(ctx, kind, subjectID, objectID)
}
