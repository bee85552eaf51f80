package rbac

// Role names as issued in login responses and JWT claims.
const (
	RoleAdmin             = "Admin"
	RoleHRManager         = "HR Manager"
	RolePayrollSpecialist = "Payroll Specialist"
	RoleManager           = "Manager"
	RoleEmployee          = "Employee"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// permissionTable is the single capability set keyed by role. Every route
// check goes through this table.
var permissionTable = [][3]string{
	// Admin: user and catalog administration, login audit.
	{RoleAdmin, "user", "read"},
	{RoleAdmin, "user", "update"},
	{RoleAdmin, "role", "read"},
	{RoleAdmin, "role", "create"},
	{RoleAdmin, "role", "update"},
	{RoleAdmin, "designation", "read"},
	{RoleAdmin, "designation", "create"},
	{RoleAdmin, "designation", "update"},
	{RoleAdmin, "loginlog", "read"},

	// HR Manager: employee registration and upkeep, leave types,
	// attendance regularization.
	{RoleHRManager, "employee", "read"},
	{RoleHRManager, "employee", "create"},
	{RoleHRManager, "employee", "update"},
	{RoleHRManager, "designation", "read"},
	{RoleHRManager, "leavetype", "read"},
	{RoleHRManager, "leavetype", "create"},
	{RoleHRManager, "leavetype", "update"},
	{RoleHRManager, "attendance", "regularize"},
	{RoleHRManager, "attendance", "read"},
	{RoleHRManager, "leave", "read"},

	// Payroll Specialist: CTC and salary workflow, query responses.
	{RolePayrollSpecialist, "ctc", "read"},
	{RolePayrollSpecialist, "ctc", "update"},
	{RolePayrollSpecialist, "salary", "read"},
	{RolePayrollSpecialist, "salary", "calculate"},
	{RolePayrollSpecialist, "salary", "release"},
	{RolePayrollSpecialist, "salary", "report"},
	{RolePayrollSpecialist, "query", "read"},
	{RolePayrollSpecialist, "query", "respond"},

	// Manager: team visibility, leave decisions, yearly rating.
	{RoleManager, "employee", "read"},
	{RoleManager, "rating", "update"},
	{RoleManager, "leave", "read"},
	{RoleManager, "leave", "approve"},
	{RoleManager, "attendance", "read"},
}

// selfServicePermissions apply to every role, Admin included: each signed-in
// user acts on their own records through these.
var selfServicePermissions = [][2]string{
	{"attendance", "mark"},
	{"attendance", "read"},
	{"leave", "create"},
	{"leave", "cancel"},
	{"leave", "read"},
	{"leavebalance", "read"},
	{"salary", "read"},
	{"query", "create"},
	{"query", "read"},
}

func allRoles() []string {
	return []string{
		RoleAdmin,
		RoleHRManager,
		RolePayrollSpecialist,
		RoleManager,
		RoleEmployee,
	}
}

// IsKnownRole reports whether name is one of the assignable roles.
func IsKnownRole(name string) bool {
	for _, r := range allRoles() {
		if r == name {
			return true
		}
	}
	return false
}
