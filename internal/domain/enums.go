package domain

// ChangeReason classifies why the reflow pass moved or resized an order.
type ChangeReason string

const (
	ReasonDependencyPush ChangeReason = "DEPENDENCY_PUSH"
	ReasonConflictPush   ChangeReason = "WORK_CENTER_CONFLICT"
	ReasonRecalculated   ChangeReason = "DURATION_RECALCULATED"
)

// ViolationKind categorizes constraint-audit findings.
type ViolationKind string

const (
	ViolationDependency  ViolationKind = "DEPENDENCY"
	ViolationExclusivity ViolationKind = "WORK_CENTER_EXCLUSIVITY"
	ViolationShift       ViolationKind = "SHIFT_MEMBERSHIP"
	ViolationMaintenance ViolationKind = "MAINTENANCE_OVERLAP"
)
