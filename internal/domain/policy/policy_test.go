package policy

import (
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func principals() (owner, stranger, staff *entity.Principal) {
	owner = &entity.Principal{UserID: uuid.New(), Roles: entity.Roles{entity.RoleUser}}
	stranger = &entity.Principal{UserID: uuid.New(), Roles: entity.Roles{entity.RoleUser}}
	staff = &entity.Principal{UserID: uuid.New(), Roles: entity.Roles{entity.RoleUser, entity.RoleStaff}}

	return owner, stranger, staff
}

func TestAuthorizer_Category(t *testing.T) {
	a := NewAuthorizer()
	user, _, staff := principals()

	assert.NoError(t, a.Check(ResourceCategory, ActionList, nil))
	assert.NoError(t, a.Check(ResourceCategory, ActionRetrieve, user))
	assert.ErrorIs(t, a.Check(ResourceCategory, ActionCreate, nil), domainerrors.ErrUnauthenticated)
	assert.ErrorIs(t, a.Check(ResourceCategory, ActionCreate, user), domainerrors.ErrForbidden)
	assert.NoError(t, a.Check(ResourceCategory, ActionCreate, staff))
	assert.NoError(t, a.Check(ResourceCategory, ActionDestroy, staff))
}

func TestAuthorizer_ProductObject(t *testing.T) {
	a := NewAuthorizer()
	owner, stranger, staff := principals()
	object := Owned(owner.UserID)

	tests := []struct {
		name      string
		action    Action
		principal *entity.Principal
		wantErr   error
	}{
		{"anyone reads", ActionRetrieve, nil, nil},
		{"stranger reads", ActionRetrieve, stranger, nil},
		{"owner updates", ActionUpdate, owner, nil},
		{"staff updates", ActionUpdate, staff, nil},
		{"staff deletes", ActionDestroy, staff, nil},
		{"stranger cannot update", ActionUpdate, stranger, domainerrors.ErrForbidden},
		{"anonymous cannot delete", ActionDestroy, nil, domainerrors.ErrUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := a.CheckObject(ResourceProduct, tt.action, tt.principal, object)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestAuthorizer_ProductCreateRequiresAuthentication(t *testing.T) {
	a := NewAuthorizer()
	owner, _, _ := principals()

	assert.ErrorIs(t, a.Check(ResourceProduct, ActionCreate, nil), domainerrors.ErrUnauthenticated)
	assert.NoError(t, a.Check(ResourceProduct, ActionCreate, owner))
}

func TestAuthorizer_Order(t *testing.T) {
	a := NewAuthorizer()
	user, _, staff := principals()

	assert.ErrorIs(t, a.Check(ResourceOrder, ActionList, nil), domainerrors.ErrUnauthenticated)
	assert.NoError(t, a.Check(ResourceOrder, ActionCreate, user))
	assert.ErrorIs(t, a.Check(ResourceOrder, ActionUpdate, user), domainerrors.ErrForbidden)
	assert.ErrorIs(t, a.Check(ResourceOrder, ActionDestroy, user), domainerrors.ErrForbidden)
	assert.NoError(t, a.Check(ResourceOrder, ActionUpdate, staff))
}

func TestAuthorizer_ShopAndReview(t *testing.T) {
	a := NewAuthorizer()
	owner, stranger, staff := principals()

	for _, resource := range []Resource{ResourceShop, ResourceReview} {
		t.Run(string(resource), func(t *testing.T) {
			object := Owned(owner.UserID)

			assert.NoError(t, a.Check(resource, ActionList, nil))
			assert.ErrorIs(t, a.Check(resource, ActionCreate, nil), domainerrors.ErrUnauthenticated)
			assert.NoError(t, a.Check(resource, ActionCreate, stranger))
			assert.NoError(t, a.CheckObject(resource, ActionUpdate, owner, object))
			assert.NoError(t, a.CheckObject(resource, ActionDestroy, staff, object))
			assert.ErrorIs(t, a.CheckObject(resource, ActionUpdate, stranger, object), domainerrors.ErrForbidden)
		})
	}
}

func TestAuthorizer_Cart(t *testing.T) {
	a := NewAuthorizer()
	user, _, _ := principals()

	assert.ErrorIs(t, a.Check(ResourceCart, ActionList, nil), domainerrors.ErrUnauthenticated)
	assert.NoError(t, a.Check(ResourceCart, ActionCreate, user))
}

func TestAuthorizer_UnlistedActionIsRefused(t *testing.T) {
	a := NewAuthorizer()
	user, _, staff := principals()

	assert.ErrorIs(t, a.Check(ResourceUser, ActionDestroy, user), domainerrors.ErrForbidden)
	assert.ErrorIs(t, a.Check(ResourceUser, ActionCreate, staff), domainerrors.ErrForbidden)
	assert.ErrorIs(t, a.Check(Resource("unknown"), ActionList, nil), domainerrors.ErrUnauthenticated)
}

func TestCombinators(t *testing.T) {
	never := func(Action, *entity.Principal, *Object) bool { return false }
	always := func(Action, *entity.Principal, *Object) bool { return true }

	assert.True(t, AnyOf(never, always)(ActionUpdate, nil, nil))
	assert.False(t, AnyOf(never, never)(ActionUpdate, nil, nil))
	assert.False(t, AnyOf()(ActionUpdate, nil, nil))
	assert.True(t, AllOf(always, always)(ActionUpdate, nil, nil))
	assert.False(t, AllOf(always, never)(ActionUpdate, nil, nil))
}

func TestIsSafeMethod(t *testing.T) {
	assert.True(t, IsSafeMethod("GET"))
	assert.True(t, IsSafeMethod("HEAD"))
	assert.True(t, IsSafeMethod("OPTIONS"))
	assert.False(t, IsSafeMethod("POST"))
	assert.False(t, IsSafeMethod("PATCH"))
}
