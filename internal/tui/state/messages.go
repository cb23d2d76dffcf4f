package state

import "github.com/jotapp/jot/internal/models"

// OpKind identifies a mutation in flight.
type OpKind int

const (
	OpCapture OpKind = iota
	OpToggleTodo
	OpDeleteTodo
	OpDeleteThought
	OpToggleHabit
	OpSkipHabit
	OpDeleteHabit
	OpDeleteInstance
	OpChangePassword
)

// OpKey identifies a single in-flight operation so a stale failure or
// completion cannot be confused with a newer one on the same entity.
type OpKey struct {
	Kind OpKind
	ID   string
}

// WindowLoadedMsg carries a freshly fetched window. Seq ties the response
// to the request generation that issued it; stale responses are dropped.
type WindowLoadedMsg struct {
	Seq       int
	Content   []models.ContentItem
	Instances []models.HabitInstance
}

// WindowErrMsg reports a failed window fetch for generation Seq.
type WindowErrMsg struct {
	Seq int
	Err error
}

// UserLoadedMsg carries the authenticated user's profile.
type UserLoadedMsg struct {
	User *models.User
}

// StatsLoadedMsg carries aggregate counts for the profile view.
type StatsLoadedMsg struct {
	Stats *models.Stats
}

// LoggedInMsg reports a successful login or registration.
type LoggedInMsg struct {
	User *models.User
}

// CapturedMsg carries the classified item the backend created from
// free-form text.
type CapturedMsg struct {
	Item models.ContentItem
}

// TodoSavedMsg carries the authoritative todo after a mutation.
type TodoSavedMsg struct {
	Op   OpKey
	Todo models.Todo
}

// TodoDeletedMsg confirms a todo deletion.
type TodoDeletedMsg struct {
	Op OpKey
	ID string
}

// ThoughtDeletedMsg confirms a thought deletion.
type ThoughtDeletedMsg struct {
	Op OpKey
	ID string
}

// InstanceSavedMsg carries the authoritative habit instance after a
// completion or skip toggle.
type InstanceSavedMsg struct {
	Op       OpKey
	Instance models.HabitInstance
}

// HabitDeletedMsg confirms a habit deletion; the server removes the
// template's future occurrences along with it.
type HabitDeletedMsg struct {
	Op OpKey
	ID string
}

// InstanceDeletedMsg confirms the deletion of a single orphaned
// occurrence whose parent habit is already gone.
type InstanceDeletedMsg struct {
	Op OpKey
	ID string
}

// PasswordChangedMsg confirms a password change.
type PasswordChangedMsg struct {
	Op OpKey
}

// OpFailedMsg reports a failed mutation.
type OpFailedMsg struct {
	Op  OpKey
	Err error
}

// AuthRequiredMsg is emitted when any call comes back 401. The stored
// token has already been cleared by the API client.
type AuthRequiredMsg struct{}

// ToastExpiredMsg dismisses the toast shown at generation Seq. A newer
// toast carries a newer Seq, so an old timer cannot dismiss it.
type ToastExpiredMsg struct {
	Seq int
}
