package relation

import (
	"foodgram/domain"
	"foodgram/entities"

	"github.com/google/uuid"
)

// Kind selects which (subject, object) relation a toggle operates on.
type Kind string

const (
	KindFavorite Kind = "favorite"
	KindCart     Kind = "cart"
	KindFollow   Kind = "follow"
)

// kindSpec is the dispatch entry for one relation kind: how to build and
// query its rows and which errors its toggles surface.
type kindSpec struct {
	objectColumn string
	newRow       func(subject, object uuid.UUID) interface{}
	blankRow     func() interface{}
	errDuplicate error
	errNotFound  error
	objectIsUser bool
}

var kindSpecs = map[Kind]kindSpec{
	KindFavorite: {
		objectColumn: "recipe_id",
		newRow: func(subject, object uuid.UUID) interface{} {
			return &entities.Favorite{ID: uuid.New(), UserID: subject, RecipeID: object}
		},
		blankRow:     func() interface{} { return &entities.Favorite{} },
		errDuplicate: domain.ErrAlreadyFavorited,
		errNotFound:  domain.ErrNotFavorited,
	},
	KindCart: {
		objectColumn: "recipe_id",
		newRow: func(subject, object uuid.UUID) interface{} {
			return &entities.CartEntry{ID: uuid.New(), UserID: subject, RecipeID: object}
		},
		blankRow:     func() interface{} { return &entities.CartEntry{} },
		errDuplicate: domain.ErrAlreadyInCart,
		errNotFound:  domain.ErrNotInCart,
	},
	KindFollow: {
		objectColumn: "author_id",
		newRow: func(subject, object uuid.UUID) interface{} {
			return &entities.Follow{ID: uuid.New(), UserID: subject, AuthorID: object}
		},
		blankRow:     func() interface{} { return &entities.Follow{} },
		errDuplicate: domain.ErrAlreadySubscribed,
		errNotFound:  domain.ErrNotSubscribed,
		objectIsUser: true,
	},
}
