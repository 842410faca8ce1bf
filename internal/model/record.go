package model

// TaskRecord is a row of the FMS task table.
type TaskRecord struct {
	ID                  Value `json:"id"`
	TaskNo              Value `json:"task_no"`
	Timestamp           Value `json:"timestamp"`
	GivenDate           Value `json:"given_date"`
	PostedBy            Value `json:"posted_by"`
	TypeOfWork          Value `json:"type_of_work"`
	TakenFrom           Value `json:"taken_from"`
	PartyName           Value `json:"party_name"`  // Company
	SystemName          Value `json:"system_name"` // Product / system worked on
	DescriptionOfWork   Value `json:"description_of_work"`
	LinkOfSystem        Value `json:"link_of_system"`
	WebsiteLink         Value `json:"website_link"`
	AttachmentFile      Value `json:"attachment_file"`
	PriorityInCustomer  Value `json:"priority_in_customer"`
	Notes               Value `json:"notes"`
	ExpectedDateToClose Value `json:"expected_date_to_close"`
	Status              Value `json:"status"`
	TeamName            Value `json:"team_name"`
	TeamMemberName      Value `json:"team_member_name"`
	AssignedBy          Value `json:"assigned_by"`
	EmployeeName1       Value `json:"employee_name_1"`
	EmployeeName2       Value `json:"employee_name_2"`
	Remarks             Value `json:"remarks"`
	Remarks2            Value `json:"remarks_2"`
	Planned1            Value `json:"planned1"`
	Actual1             Value `json:"actual1"`
	Planned2            Value `json:"planned2"`
	Actual2             Value `json:"actual2"`
	Planned3            Value `json:"planned3"`
	Actual3             Value `json:"actual3"`
	DurationHint1       Value `json:"how_many_time_take"`   // Stage 1 estimate or start stamp
	DurationHint2       Value `json:"how_many_time_take_2"` // Free-text estimate from assignment
}

// TaskColumns lists the FMS columns in the order ScanTargets returns them.
var TaskColumns = []string{
	"id", "task_no", "timestamp", "given_date", "posted_by", "type_of_work", "taken_from",
	"party_name", "system_name", "description_of_work", "link_of_system", "website_link",
	"attachment_file", "priority_in_customer", "notes", "expected_date_to_close", "status",
	"team_name", "team_member_name", "assigned_by", "employee_name_1", "employee_name_2",
	"remarks", "remarks_2", "planned1", "actual1", "planned2", "actual2", "planned3", "actual3",
	"how_many_time_take", "how_many_time_take_2",
}

var taskColumnSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(TaskColumns))
	for _, c := range TaskColumns {
		m[c] = struct{}{}
	}
	return m
}()

// IsTaskColumn reports whether name is an FMS column.
func IsTaskColumn(name string) bool {
	_, ok := taskColumnSet[name]
	return ok
}

// ScanTargets returns pointers to every field in TaskColumns order.
func (r *TaskRecord) ScanTargets() []any {
	return []any{
		&r.ID, &r.TaskNo, &r.Timestamp, &r.GivenDate, &r.PostedBy, &r.TypeOfWork, &r.TakenFrom,
		&r.PartyName, &r.SystemName, &r.DescriptionOfWork, &r.LinkOfSystem, &r.WebsiteLink,
		&r.AttachmentFile, &r.PriorityInCustomer, &r.Notes, &r.ExpectedDateToClose, &r.Status,
		&r.TeamName, &r.TeamMemberName, &r.AssignedBy, &r.EmployeeName1, &r.EmployeeName2,
		&r.Remarks, &r.Remarks2, &r.Planned1, &r.Actual1, &r.Planned2, &r.Actual2, &r.Planned3, &r.Actual3,
		&r.DurationHint1, &r.DurationHint2,
	}
}

// Label identifies the record in logs: the task number, else "#id".
func (r TaskRecord) Label() string {
	if r.TaskNo.Present() {
		return r.TaskNo.Trim()
	}
	if r.ID.Present() {
		return "#" + r.ID.Trim()
	}
	return ""
}
