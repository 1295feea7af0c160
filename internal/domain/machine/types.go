package machine

type Status string

const (
	StatusUsable   Status = "usable"
	StatusUnusable Status = "unusable"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusUsable, StatusUnusable:
		return true
	default:
		return false
	}
}
