package service

type RefreshState string

const (
	RefreshIdle    RefreshState = "IDLE"
	RefreshLoading RefreshState = "LOADING"
	RefreshReady   RefreshState = "READY"
	RefreshFailed  RefreshState = "FAILED"
)

type ActionState string

const (
	ActionIdle       ActionState = "IDLE"
	ActionSubmitting ActionState = "SUBMITTING"
	ActionConfirming ActionState = "CONFIRMING"
	ActionSucceeded  ActionState = "SUCCEEDED"
	ActionFailed     ActionState = "FAILED"
)

// Status is a point in time view of the controller.
type Status struct {
	Refresh        RefreshState `json:"refresh"`
	LastRefresh    RefreshState `json:"lastRefresh"`
	Action         ActionState  `json:"action"`
	PublishedCycle uint64       `json:"publishedCycle"`
}
