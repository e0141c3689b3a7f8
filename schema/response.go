package schema

// Terminal actions an inbound callback may carry.
const (
	ActionSuccess = "success"
	ActionError   = "error"
	ActionCancel  = "cancel"
)

// Status is the terminal outcome of one x-callback-url request.
type Status string

const (
	StatusSuccess Status = ActionSuccess
	StatusError   Status = ActionError
	StatusCancel  Status = ActionCancel
)

// Response is the typed result of an executed request: the terminal status
// and the action parameters returned by the target application.
type Response struct {
	Status       Status
	ActionParams []Param
}

// ParseStatus maps an inbound callback action to a Status. Any other action
// is an unrecognized terminal action.
func ParseStatus(action string) (Status, error) {
	switch action {
	case ActionSuccess:
		return StatusSuccess, nil
	case ActionError:
		return StatusError, nil
	case ActionCancel:
		return StatusCancel, nil
	}
	return "", NewUnrecognizedAction(action)
}
