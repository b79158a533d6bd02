package domain

// ChangeType is what happened to a watched file.
type ChangeType int

const (
	ChangeCreated ChangeType = iota
	ChangeUpdated
	ChangeDeleted
)

var changeNames = map[ChangeType]string{
	ChangeCreated: "created",
	ChangeUpdated: "updated",
	ChangeDeleted: "deleted",
}

func (c ChangeType) String() string {
	if name, ok := changeNames[c]; ok {
		return name
	}
	return "unknown"
}

// FileChange is one event reported by a file watcher.
type FileChange struct {
	Type ChangeType
	Path string
}
