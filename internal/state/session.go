package state

import (
	"strings"

	"github.com/atomicstack/lazyfile/internal/rclone"
)

// Panel identifies which side of the screen has focus.
type Panel int

const (
	PanelRemotes Panel = iota
	PanelFiles
)

func (p Panel) String() string {
	if p == PanelFiles {
		return "files"
	}
	return "remotes"
}

// Session holds everything the browser shows: the remote list, the directory
// being browsed and any open modal. It has no I/O; results from the daemon are
// applied through the Apply methods only after they succeed.
type Session struct {
	FocusedPanel Panel

	Remotes         []string
	RemotesSelected int

	// CurrentRemote is empty while no remote is open.
	CurrentRemote string
	CurrentPath   string
	Files         []rclone.FileItem
	FilesSelected int

	Modal Modal
	// PendingDelete names the remote awaiting delete confirmation.
	PendingDelete string

	Running bool
}

// NewSession returns a session focused on the remote list.
func NewSession() *Session {
	return &Session{FocusedPanel: PanelRemotes, Running: true}
}

// NavigateDown moves the focused panel's selection one row down, stopping at
// the last row.
func (s *Session) NavigateDown() {
	switch s.FocusedPanel {
	case PanelRemotes:
		if s.RemotesSelected < len(s.Remotes)-1 {
			s.RemotesSelected++
		}
	case PanelFiles:
		if s.FilesSelected < len(s.Files)-1 {
			s.FilesSelected++
		}
	}
}

// NavigateUp moves the focused panel's selection one row up, stopping at 0.
func (s *Session) NavigateUp() {
	switch s.FocusedPanel {
	case PanelRemotes:
		if s.RemotesSelected > 0 {
			s.RemotesSelected--
		}
	case PanelFiles:
		if s.FilesSelected > 0 {
			s.FilesSelected--
		}
	}
}

// SwitchPanel toggles focus between the two panels. Selections are kept.
func (s *Session) SwitchPanel() {
	if s.FocusedPanel == PanelRemotes {
		s.FocusedPanel = PanelFiles
	} else {
		s.FocusedPanel = PanelRemotes
	}
}

// SelectedRemote returns the highlighted remote name.
func (s *Session) SelectedRemote() (string, bool) {
	if s.RemotesSelected < 0 || s.RemotesSelected >= len(s.Remotes) {
		return "", false
	}
	return s.Remotes[s.RemotesSelected], true
}

// SelectedFile returns the highlighted entry of the file list.
func (s *Session) SelectedFile() (rclone.FileItem, bool) {
	if s.FilesSelected < 0 || s.FilesSelected >= len(s.Files) {
		return rclone.FileItem{}, false
	}
	return s.Files[s.FilesSelected], true
}

// Browsing reports whether a remote is open in the file panel.
func (s *Session) Browsing() bool {
	return s.CurrentRemote != ""
}

// Location renders the open directory as "remote:path".
func (s *Session) Location() string {
	if !s.Browsing() {
		return ""
	}
	return rclone.FsPath(s.CurrentRemote, s.CurrentPath)
}

// ChildPath returns the path of the entry name inside the current directory:
// "/docs" from the root, "/docs/reports" from "/docs".
func (s *Session) ChildPath(name string) string {
	return s.CurrentPath + "/" + name
}

// ParentPath returns the current path minus its last segment. The second
// result is false at the remote root, where there is no parent to load.
func (s *Session) ParentPath() (string, bool) {
	if s.CurrentPath == "" {
		return "", false
	}
	idx := strings.LastIndex(s.CurrentPath, "/")
	if idx < 0 {
		return "", true
	}
	return s.CurrentPath[:idx], true
}

// LeaveRemote closes the open remote and returns focus to the remote list.
func (s *Session) LeaveRemote() {
	s.CurrentRemote = ""
	s.CurrentPath = ""
	s.Files = nil
	s.FilesSelected = 0
	s.FocusedPanel = PanelRemotes
}

// ApplyRemotes replaces the remote list, keeping the selection in range. If
// the open remote no longer exists the file panel is cleared.
func (s *Session) ApplyRemotes(remotes []string) {
	s.Remotes = append([]string(nil), remotes...)
	s.RemotesSelected = clamp(s.RemotesSelected, len(s.Remotes))
	if s.Browsing() && !contains(s.Remotes, s.CurrentRemote) {
		s.LeaveRemote()
	}
}

// ApplyFiles commits a successful listing: remote and path become current,
// the selection resets and focus moves to the file panel.
func (s *Session) ApplyFiles(remote, path string, files []rclone.FileItem) {
	s.CurrentRemote = remote
	s.CurrentPath = path
	s.Files = append([]rclone.FileItem(nil), files...)
	s.FilesSelected = 0
	s.FocusedPanel = PanelFiles
}

func clamp(idx, length int) int {
	if length == 0 || idx < 0 {
		return 0
	}
	if idx >= length {
		return length - 1
	}
	return idx
}

func contains(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
