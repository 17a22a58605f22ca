// Package permissions maps the closed set of staff roles to what each role
// may do. Handlers ask Allowed once per request through middleware.
package permissions

import "strings"

type Role string

const (
	RoleOwner        Role = "OWNER"
	RoleManager      Role = "MANAGER"
	RoleVeterinarian Role = "VETERINARIAN"
	RoleAssistant    Role = "ASSISTANT"
	RoleReceptionist Role = "RECEPTIONIST"
	RoleCashier      Role = "CASHIER"
)

var roles = []Role{RoleOwner, RoleManager, RoleVeterinarian, RoleAssistant, RoleReceptionist, RoleCashier}

// ParseRole is case-insensitive; unknown strings are rejected.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range roles {
		if r == known {
			return r, true
		}
	}
	return "", false
}

type Feature string

const (
	FeatureAppointments  Feature = "appointments"
	FeatureRequests      Feature = "appointment_requests"
	FeatureBusinessHours Feature = "business_hours"
	FeatureCash          Feature = "cash"
	FeatureCashReports   Feature = "cash_reports"
	FeatureAuditLogs     Feature = "audit_logs"
)

type Action string

const (
	ActionRead  Action = "read"
	ActionWrite Action = "write"
)

type Capability struct {
	Feature Feature
	Action  Action
}

func Can(f Feature, a Action) Capability {
	return Capability{Feature: f, Action: a}
}

var (
	readAppointments  = Can(FeatureAppointments, ActionRead)
	writeAppointments = Can(FeatureAppointments, ActionWrite)
	readRequests      = Can(FeatureRequests, ActionRead)
	writeRequests     = Can(FeatureRequests, ActionWrite)
	readHours         = Can(FeatureBusinessHours, ActionRead)
	writeHours        = Can(FeatureBusinessHours, ActionWrite)
	readCash          = Can(FeatureCash, ActionRead)
	writeCash         = Can(FeatureCash, ActionWrite)
	readCashReports   = Can(FeatureCashReports, ActionRead)
	readAuditLogs     = Can(FeatureAuditLogs, ActionRead)
)

func set(caps ...Capability) map[Capability]bool {
	m := make(map[Capability]bool, len(caps))
	for _, c := range caps {
		m[c] = true
	}
	return m
}

// matrix is the only place role strings turn into decisions. OWNER is not
// listed: it may do everything.
var matrix = map[Role]map[Capability]bool{
	RoleManager: set(
		readAppointments, writeAppointments, readRequests, writeRequests,
		readHours, writeHours, readCash, writeCash, readCashReports,
		readAuditLogs,
	),
	RoleVeterinarian: set(readAppointments, writeAppointments, readRequests, readHours),
	RoleAssistant:    set(readAppointments, readRequests, readHours),
	RoleReceptionist: set(
		readAppointments, writeAppointments, readRequests, writeRequests,
		readHours, readCash, writeCash,
	),
	RoleCashier: set(readAppointments, readHours, readCash, writeCash),
}

func Allowed(r Role, c Capability) bool {
	if r == RoleOwner {
		return true
	}
	return matrix[r][c]
}
