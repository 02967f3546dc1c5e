package domain

import (
	"net/netip"
	"strings"
	"time"
)

// DenyReason identifies which check rejected an access request.
type DenyReason string

// Deny reasons, in evaluation order.
const (
	DenyNotActive          DenyReason = "not_active"
	DenyIPNotAllowed       DenyReason = "ip_not_allowed"
	DenyEmailNotAllowed    DenyReason = "email_not_allowed"
	DenyDomainNotAllowed   DenyReason = "domain_not_allowed"
	DenyCustomerNotInScope DenyReason = "customer_not_in_scope"
	DenyEndpointNotInScope DenyReason = "endpoint_not_in_scope"
)

// AccessRequest is a candidate request context evaluated against a token.
// CallerDomain is optional; when empty, the domain portion of CallerEmail is
// used for the domain check.
type AccessRequest struct {
	CallerIP     string
	CallerEmail  string
	CallerDomain string
	CustomerCode string
	Endpoint     string
}

// Decision is the outcome of evaluating an AccessRequest against a token.
type Decision struct {
	Allowed bool
	Reason  DenyReason // empty when Allowed
}

// allow is the single allowed decision value.
var allow = Decision{Allowed: true}

func deny(reason DenyReason) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Authorize evaluates the request against the token at the given instant.
// Checks run in a fixed order and short-circuit on the first failure:
// status, IP allow-list, email allow-list, domain allow-list, customer scope,
// endpoint scope. Each allow-list dimension is independently optional (empty
// means unrestricted) and all present dimensions are conjunctive.
//
// Authorize is a pure function over a token snapshot: it reads no shared
// state and is safe to call concurrently.
func (t *Token) Authorize(req AccessRequest, now time.Time) Decision {
	if t.Status(now) != StatusActive {
		return deny(DenyNotActive)
	}

	if len(t.AllowedIPs) > 0 && !ipAllowed(t.AllowedIPs, req.CallerIP) {
		return deny(DenyIPNotAllowed)
	}

	if len(t.AllowedEmails) > 0 && !contains(t.AllowedEmails, req.CallerEmail) {
		return deny(DenyEmailNotAllowed)
	}

	if len(t.AllowedDomains) > 0 && !domainAllowed(t.AllowedDomains, req.callerDomain()) {
		return deny(DenyDomainNotAllowed)
	}

	grant := t.Grant(req.CustomerCode)
	if grant == nil {
		return deny(DenyCustomerNotInScope)
	}

	if !contains(grant.AllowedEndpoints, req.Endpoint) {
		return deny(DenyEndpointNotInScope)
	}

	return allow
}

// callerDomain returns the explicit caller domain, or the domain portion of
// the caller email.
func (r AccessRequest) callerDomain() string {
	if r.CallerDomain != "" {
		return r.CallerDomain
	}
	if at := strings.LastIndex(r.CallerEmail, "@"); at >= 0 {
		return r.CallerEmail[at+1:]
	}
	return ""
}

// ipAllowed reports whether callerIP matches any entry. Entries containing a
// slash are treated as CIDR prefixes, others as exact addresses. Entries or
// caller addresses that do not parse never match.
func ipAllowed(entries []string, callerIP string) bool {
	addr, err := netip.ParseAddr(callerIP)
	if err != nil {
		return false
	}

	for _, entry := range entries {
		if strings.Contains(entry, "/") {
			prefix, err := netip.ParsePrefix(entry)
			if err != nil {
				continue
			}
			if prefix.Contains(addr) {
				return true
			}
			continue
		}

		allowed, err := netip.ParseAddr(entry)
		if err != nil {
			continue
		}
		if allowed == addr {
			return true
		}
	}

	return false
}

// domainAllowed reports whether the caller domain matches any entry.
// Domains compare case-insensitively, matching DNS semantics.
func domainAllowed(entries []string, callerDomain string) bool {
	if callerDomain == "" {
		return false
	}
	for _, entry := range entries {
		if strings.EqualFold(entry, callerDomain) {
			return true
		}
	}
	return false
}

func contains(set []string, value string) bool {
	for _, entry := range set {
		if entry == value {
			return true
		}
	}
	return false
}
