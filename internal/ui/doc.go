// Package ui contains the Bubble Tea program that browses rclone remotes.
// Model focuses on message orchestration; dedicated helpers own panel
// navigation, modal input and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry.
//   - Key presses go to the open modal first (prompt.go for the delete
//     confirmation, forms.go for the create/edit form). Panel keys in
//     navigation.go only apply while no modal is open.
//   - Keys that need the daemon produce a backend.Request. The command bus
//     turns it into a tea.Cmd that blocks on the backend worker; the model is
//     busy and drops keys until the command.ResultMsg arrives.
//
// State ownership:
//   - Navigation and modal state lives in internal/state.Session. The model
//     keeps only presentation concerns: busy flag, status messages, viewport
//     offsets and terminal size.
//   - Completed requests are applied to the session by the dispatcher, which
//     changes nothing when a request failed.
package ui
