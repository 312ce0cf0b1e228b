package models

import "strings"

// Kind names one of the two account collections.
type Kind string

const (
	KindCustomer Kind = "customer"
	KindWorker   Kind = "worker"
)

// ParseKind maps a wire userType onto a Kind. "user" is the value the web
// client has always sent for customers.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "customer", "user":
		return KindCustomer, true
	case "worker":
		return KindWorker, true
	}
	return "", false
}

// Principal is the authenticated caller. Exactly one of Customer or Worker
// is set, matching Kind.
type Principal struct {
	Kind     Kind
	Customer *Customer
	Worker   *Worker
}

// ID returns the id of whichever account the principal holds.
func (p *Principal) ID() string {
	switch p.Kind {
	case KindCustomer:
		if p.Customer != nil {
			return p.Customer.ID
		}
	case KindWorker:
		if p.Worker != nil {
			return p.Worker.ID
		}
	}
	return ""
}

// Account returns the account record for JSON rendering.
func (p *Principal) Account() any {
	if p.Kind == KindWorker {
		return p.Worker
	}
	return p.Customer
}
