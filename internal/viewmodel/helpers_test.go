package viewmodel_test

// fixedUser is a SessionUser with a constant id.
type fixedUser int

func (u fixedUser) UserID() int { return int(u) }

func ptr[T any](v T) *T { return &v }
