package state

// Modal is an overlay that captures all keys while open. It is either a
// *ConfirmModal or a *RemoteForm.
type Modal interface {
	modalKind() string
}

// ModalKind names the modal for trace logs, or returns "" for none.
func ModalKind(m Modal) string {
	if m == nil {
		return ""
	}
	return m.modalKind()
}

// ConfirmChoice is the highlighted button of a confirmation dialog.
type ConfirmChoice int

const (
	ChoiceNo ConfirmChoice = iota
	ChoiceYes
)

// ConfirmModal asks a yes/no question. It starts on No.
type ConfirmModal struct {
	Title   string
	Message string
	Choice  ConfirmChoice
}

func (*ConfirmModal) modalKind() string { return "confirm" }

// Toggle flips the highlighted button.
func (c *ConfirmModal) Toggle() {
	if c.Choice == ChoiceYes {
		c.Choice = ChoiceNo
	} else {
		c.Choice = ChoiceYes
	}
}

// Set highlights choice.
func (c *ConfirmModal) Set(choice ConfirmChoice) { c.Choice = choice }

// Confirmed reports whether Yes is highlighted.
func (c *ConfirmModal) Confirmed() bool { return c.Choice == ChoiceYes }

// ModalOpen reports whether any modal is showing.
func (s *Session) ModalOpen() bool { return s.Modal != nil }

// Confirm returns the open confirmation dialog, if that is what is showing.
func (s *Session) Confirm() (*ConfirmModal, bool) {
	c, ok := s.Modal.(*ConfirmModal)
	return c, ok
}

// Form returns the open remote form, if that is what is showing.
func (s *Session) Form() (*RemoteForm, bool) {
	f, ok := s.Modal.(*RemoteForm)
	return f, ok
}

// OpenCreate shows an empty form for a new remote.
func (s *Session) OpenCreate() {
	s.Modal = NewCreateForm()
}

// OpenEdit shows the form for the highlighted remote. Nothing happens when the
// list is empty.
func (s *Session) OpenEdit() bool {
	name, ok := s.SelectedRemote()
	if !ok {
		return false
	}
	s.Modal = NewEditForm(name)
	return true
}

// OpenDelete asks for confirmation before deleting the highlighted remote.
// Nothing happens when the list is empty.
func (s *Session) OpenDelete() bool {
	name, ok := s.SelectedRemote()
	if !ok {
		return false
	}
	s.PendingDelete = name
	s.Modal = &ConfirmModal{
		Title:   "Delete Remote",
		Message: "Delete '" + name + "'?",
		Choice:  ChoiceNo,
	}
	return true
}

// CloseModal dismisses whatever modal is open and forgets a pending delete.
func (s *Session) CloseModal() {
	s.Modal = nil
	s.PendingDelete = ""
}
