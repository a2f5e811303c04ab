// Package guard holds the pure route-guard decision functions run before
// navigation. Guards only read the client-held credentials record; they
// never call the server.
package guard

import (
	"errors"

	"restaurant-orders-api/credentials"
	"restaurant-orders-api/models"
)

// Landing pages per guarded area.
const (
	PathIndex    = "/"
	PathLogin    = "/login"
	PathCustomer = "/customer"
	PathWaiter   = "/waiter"
	PathManager  = "/manager"
)

// ErrAccessDenied is raised (not redirected) by the manager guard.
var ErrAccessDenied = errors.New("Access denied. Manager role required.")

type Action int

const (
	ActionAllow Action = iota
	ActionRedirect
	ActionDeny
)

// Decision is the outcome of a guard: stay, go elsewhere, or fail.
type Decision struct {
	Action Action
	Target string
	Err    error
}

func allow() Decision { return Decision{Action: ActionAllow} }

func redirect(target string) Decision { return Decision{Action: ActionRedirect, Target: target} }

func deny(err error) Decision { return Decision{Action: ActionDeny, Err: err} }

// Auth gates any page that merely requires a login.
func Auth(rec *credentials.Record) Decision {
	if rec == nil {
		return redirect(PathLogin)
	}
	return allow()
}

// Customer gates the customer area.
func Customer(rec *credentials.Record) Decision {
	if rec == nil {
		return redirect(PathLogin)
	}
	switch rec.Role {
	case models.RoleCustomer:
		return allow()
	case models.RoleWaiter:
		return redirect(PathWaiter)
	default:
		return redirect(PathIndex)
	}
}

// Waiter gates the waiter area.
func Waiter(rec *credentials.Record) Decision {
	if rec == nil {
		return redirect(PathLogin)
	}
	switch rec.Role {
	case models.RoleWaiter:
		return allow()
	case models.RoleCustomer:
		return redirect(PathCustomer)
	default:
		return redirect(PathIndex)
	}
}

// WaiterOrManager gates pages shared by both staff roles.
func WaiterOrManager(rec *credentials.Record) Decision {
	if rec == nil {
		return redirect(PathLogin)
	}
	switch rec.Role {
	case models.RoleWaiter, models.RoleManager:
		return allow()
	case models.RoleCustomer:
		return redirect(PathCustomer)
	default:
		return redirect(PathIndex)
	}
}

// Manager gates manager-only pages. Unlike the other guards it denies with
// an error rather than redirecting a logged-in non-manager.
func Manager(rec *credentials.Record) Decision {
	if rec == nil {
		return redirect(PathIndex)
	}
	if rec.Role != models.RoleManager {
		return deny(ErrAccessDenied)
	}
	return allow()
}

// Index sends an authenticated visitor to their role's landing page and
// leaves everyone else on the generic landing page.
func Index(rec *credentials.Record) Decision {
	if rec == nil {
		return allow()
	}
	switch rec.Role {
	case models.RoleCustomer:
		return redirect(PathCustomer)
	case models.RoleWaiter:
		return redirect(PathWaiter)
	case models.RoleManager:
		return redirect(PathManager)
	default:
		return allow()
	}
}
