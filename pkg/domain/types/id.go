package types

// FormID is the forms platform's identifier for one created form container
type FormID string

func (id FormID) String() string {
	return string(id)
}

// ItemID is the forms platform's opaque identifier for a created item
// (section header or question). It exists only after the structural batch
// has been applied.
type ItemID string

func (id ItemID) String() string {
	return string(id)
}
