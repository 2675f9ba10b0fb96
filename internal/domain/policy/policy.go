// Package policy decides whether a principal may perform an action on a
// resource. Decisions come from a table of predicates keyed by resource and
// action, evaluated once for the collection and again for a loaded object.
package policy

import (
	"net/http"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
)

// Action is an operation on a resource endpoint.
type Action string

const (
	ActionList     Action = "list"
	ActionRetrieve Action = "retrieve"
	ActionCreate   Action = "create"
	ActionUpdate   Action = "update"
	ActionDestroy  Action = "destroy"
)

// Method maps the action to the HTTP method it is served on.
func (a Action) Method() string {
	switch a {
	case ActionList, ActionRetrieve:
		return http.MethodGet
	case ActionCreate:
		return http.MethodPost
	case ActionUpdate:
		return http.MethodPut
	case ActionDestroy:
		return http.MethodDelete
	default:
		return ""
	}
}

// IsSafe reports whether the action only reads state.
func (a Action) IsSafe() bool {
	return IsSafeMethod(a.Method())
}

// IsSafeMethod reports whether an HTTP method is read-only.
func IsSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	default:
		return false
	}
}

// Resource names a protected collection.
type Resource string

const (
	ResourceCategory Resource = "category"
	ResourceShop     Resource = "shop"
	ResourceProduct  Resource = "product"
	ResourceCart     Resource = "cart"
	ResourceOrder    Resource = "order"
	ResourceReview   Resource = "review"
	ResourceUser     Resource = "user"
)

// Object carries the ownership facts of a loaded record.
// A nil *Object means the collection-level check.
type Object struct {
	OwnerID uuid.UUID
}

// Owned builds an Object for the given owner.
func Owned(ownerID uuid.UUID) *Object {
	return &Object{OwnerID: ownerID}
}

// Predicate grants or refuses an action.
type Predicate func(action Action, principal *entity.Principal, object *Object) bool

// ReadOnly allows safe actions only.
func ReadOnly(action Action, _ *entity.Principal, _ *Object) bool {
	return action.IsSafe()
}

// IsAuthenticated allows any authenticated principal.
func IsAuthenticated(_ Action, principal *entity.Principal, _ *Object) bool {
	return principal.IsAuthenticated()
}

// IsAdmin allows staff principals.
func IsAdmin(_ Action, principal *entity.Principal, _ *Object) bool {
	return principal.IsStaff()
}

// IsAdminOrReadOnly allows safe actions to anyone and the rest to staff.
func IsAdminOrReadOnly(action Action, principal *entity.Principal, _ *Object) bool {
	return action.IsSafe() || principal.IsStaff()
}

// IsOwnerOrReadOnly allows safe actions to anyone. Mutations require an
// authenticated principal and, on an object, ownership.
func IsOwnerOrReadOnly(action Action, principal *entity.Principal, object *Object) bool {
	if action.IsSafe() {
		return true
	}
	if !principal.IsAuthenticated() {
		return false
	}
	if object == nil {
		return true
	}

	return principal.Owns(object.OwnerID)
}

// IsOwnerOrAdmin is IsOwnerOrReadOnly that also lets staff mutate any object.
func IsOwnerOrAdmin(action Action, principal *entity.Principal, object *Object) bool {
	if IsOwnerOrReadOnly(action, principal, object) {
		return true
	}

	return principal.IsStaff()
}

// AnyOf grants when at least one predicate grants.
func AnyOf(predicates ...Predicate) Predicate {
	return func(action Action, principal *entity.Principal, object *Object) bool {
		for _, predicate := range predicates {
			if predicate(action, principal, object) {
				return true
			}
		}

		return false
	}
}

// AllOf grants when every predicate grants.
func AllOf(predicates ...Predicate) Predicate {
	return func(action Action, principal *entity.Principal, object *Object) bool {
		for _, predicate := range predicates {
			if !predicate(action, principal, object) {
				return false
			}
		}

		return true
	}
}

// Table maps each resource and action to its predicate.
type Table map[Resource]map[Action]Predicate

// uniform applies one predicate to every action.
func uniform(predicate Predicate) map[Action]Predicate {
	return map[Action]Predicate{
		ActionList:     predicate,
		ActionRetrieve: predicate,
		ActionCreate:   predicate,
		ActionUpdate:   predicate,
		ActionDestroy:  predicate,
	}
}

// DefaultTable is the permission table of the storefront API.
func DefaultTable() Table {
	ownerOrAdmin := AnyOf(IsOwnerOrReadOnly, IsAdmin)

	return Table{
		ResourceCategory: uniform(IsAdminOrReadOnly),
		ResourceShop: {
			ActionList:     ReadOnly,
			ActionRetrieve: ReadOnly,
			ActionCreate:   IsAuthenticated,
			ActionUpdate:   IsOwnerOrAdmin,
			ActionDestroy:  IsOwnerOrAdmin,
		},
		ResourceProduct: {
			ActionList:     IsOwnerOrReadOnly,
			ActionRetrieve: IsOwnerOrReadOnly,
			ActionCreate:   IsOwnerOrReadOnly,
			ActionUpdate:   ownerOrAdmin,
			ActionDestroy:  ownerOrAdmin,
		},
		ResourceCart: uniform(IsAuthenticated),
		ResourceOrder: {
			ActionList:     IsAuthenticated,
			ActionRetrieve: IsAuthenticated,
			ActionCreate:   IsAuthenticated,
			ActionUpdate:   IsAdmin,
			ActionDestroy:  IsAdmin,
		},
		ResourceReview: {
			ActionList:     ReadOnly,
			ActionRetrieve: ReadOnly,
			ActionCreate:   IsAuthenticated,
			ActionUpdate:   IsOwnerOrAdmin,
			ActionDestroy:  IsOwnerOrAdmin,
		},
		ResourceUser: {
			ActionList:     IsAuthenticated,
			ActionRetrieve: IsAuthenticated,
			ActionUpdate:   AllOf(IsAuthenticated, IsOwnerOrReadOnly),
		},
	}
}

// Authorizer evaluates a Table.
type Authorizer struct {
	table Table
}

// NewAuthorizer creates an Authorizer over the default table.
func NewAuthorizer() *Authorizer {
	return NewAuthorizerWithTable(DefaultTable())
}

// NewAuthorizerWithTable creates an Authorizer over a custom table.
func NewAuthorizerWithTable(table Table) *Authorizer {
	return &Authorizer{table: table}
}

// Check evaluates the collection-level permission, before any lookup.
func (a *Authorizer) Check(resource Resource, action Action, principal *entity.Principal) error {
	return a.CheckObject(resource, action, principal, nil)
}

// CheckObject evaluates the permission against a loaded object.
// Refusals map to 401 for anonymous principals and 403 otherwise.
// Unlisted resource and action pairs are refused.
func (a *Authorizer) CheckObject(resource Resource, action Action, principal *entity.Principal, object *Object) error {
	predicate, ok := a.table[resource][action]
	if ok && predicate(action, principal, object) {
		return nil
	}

	if !principal.IsAuthenticated() {
		return domainerrors.ErrUnauthenticated
	}

	return domainerrors.ErrForbidden
}
