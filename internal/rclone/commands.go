package rclone

// Daemon remote-control endpoints, relative to the base URL.
const (
	EndpointListRemotes  = "config/listremotes"
	EndpointList         = "operations/list"
	EndpointCreateRemote = "config/create"
	EndpointUpdateRemote = "config/update"
	EndpointDeleteRemote = "config/delete"
)
