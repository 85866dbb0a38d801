package state

import "testing"

func TestOpenDeleteCapturesTarget(t *testing.T) {
	s := newTestSession("gdrive", "myremote")
	s.NavigateDown()
	if !s.OpenDelete() {
		t.Fatalf("expected delete modal to open")
	}
	c, ok := s.Confirm()
	if !ok {
		t.Fatalf("expected confirm modal, got %T", s.Modal)
	}
	if s.PendingDelete != "myremote" {
		t.Fatalf("expected pending target myremote, got %q", s.PendingDelete)
	}
	if c.Title != "Delete Remote" || c.Message != "Delete 'myremote'?" {
		t.Fatalf("unexpected modal text %q / %q", c.Title, c.Message)
	}
	if c.Confirmed() {
		t.Fatalf("expected choice to default to No")
	}
}

func TestOpenOnEmptyListDoesNothing(t *testing.T) {
	s := newTestSession()
	if s.OpenDelete() || s.OpenEdit() {
		t.Fatalf("expected no modal on empty list")
	}
	if s.ModalOpen() || s.PendingDelete != "" {
		t.Fatalf("expected state untouched")
	}
}

func TestCloseModalClearsPendingDelete(t *testing.T) {
	s := newTestSession("gdrive")
	s.OpenDelete()
	s.CloseModal()
	if s.ModalOpen() || s.PendingDelete != "" {
		t.Fatalf("expected modal closed and target cleared")
	}
}

func TestOpeningModalReplacesPrevious(t *testing.T) {
	s := newTestSession("gdrive")
	s.OpenCreate()
	s.OpenDelete()
	if _, ok := s.Form(); ok {
		t.Fatalf("expected form to be replaced by confirm modal")
	}
	if _, ok := s.Confirm(); !ok {
		t.Fatalf("expected confirm modal")
	}
}

func TestConfirmToggleIsInvolutive(t *testing.T) {
	c := &ConfirmModal{}
	c.Toggle()
	if !c.Confirmed() {
		t.Fatalf("expected Yes after one toggle")
	}
	c.Toggle()
	if c.Confirmed() {
		t.Fatalf("expected No after two toggles")
	}
}

func TestConfirmSetIsIdempotent(t *testing.T) {
	c := &ConfirmModal{Choice: ChoiceYes}
	c.Set(ChoiceYes)
	if c.Choice != ChoiceYes {
		t.Fatalf("expected Yes to stay Yes")
	}
	c.Set(ChoiceNo)
	c.Set(ChoiceNo)
	if c.Choice != ChoiceNo {
		t.Fatalf("expected No to stay No")
	}
}

func TestOpenEditPrefillsName(t *testing.T) {
	s := newTestSession("gdrive")
	s.OpenEdit()
	f, ok := s.Form()
	if !ok {
		t.Fatalf("expected form modal")
	}
	if f.Mode != FormEdit || f.Name() != "gdrive" || f.Type() != DefaultRemoteType || f.Path() != "" {
		t.Fatalf("unexpected edit form %q/%q/%q", f.Name(), f.Type(), f.Path())
	}
	if f.Title() != "Edit Remote" {
		t.Fatalf("unexpected title %q", f.Title())
	}
}

func TestModalKind(t *testing.T) {
	s := newTestSession("gdrive")
	if got := ModalKind(s.Modal); got != "" {
		t.Fatalf("expected no kind without a modal, got %q", got)
	}
	cases := []struct {
		open func() bool
		want string
	}{
		{func() bool { s.OpenCreate(); return true }, "create"},
		{s.OpenDelete, "confirm"},
		{s.OpenEdit, "edit"},
	}
	for _, tc := range cases {
		if !tc.open() {
			t.Fatalf("expected %s modal to open", tc.want)
		}
		if got := ModalKind(s.Modal); got != tc.want {
			t.Fatalf("expected kind %q, got %q", tc.want, got)
		}
		s.CloseModal()
	}
}
