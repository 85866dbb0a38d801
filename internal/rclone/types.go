package rclone

import (
	"strings"
	"time"
)

// FileItem is one entry of an operations/list response.
type FileItem struct {
	Name    string `json:"Name"`
	Size    int64  `json:"Size"`
	ModTime string `json:"ModTime"`
	IsDir   bool   `json:"IsDir"`
}

// Modified parses ModTime. The daemon reports RFC 3339 timestamps with
// nanosecond precision; anything else reports false.
func (f FileItem) Modified() (time.Time, bool) {
	if strings.TrimSpace(f.ModTime) == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, f.ModTime)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

type listFilesRequest struct {
	Fs     string `json:"fs"`
	Remote string `json:"remote"`
}

type listFilesResponse struct {
	List []FileItem `json:"list"`
}

type createRequest struct {
	Name       string            `json:"name"`
	Type       string            `json:"type"`
	Parameters map[string]string `json:"parameters"`
}

type updateRequest struct {
	Name       string            `json:"name"`
	Parameters map[string]string `json:"parameters"`
}

type deleteRequest struct {
	Name string `json:"name"`
}

// FsPath joins a remote and a path into the daemon's "remote:path" form.
// An empty path addresses the remote's root.
func FsPath(remote, path string) string {
	return remote + ":" + path
}

// KnownBackends lists common storage backend types accepted by config/create.
var KnownBackends = []string{
	"local",
	"alias",
	"s3",
	"drive",
	"dropbox",
	"onedrive",
	"box",
	"b2",
	"azureblob",
	"gcs",
	"sftp",
	"ftp",
	"webdav",
	"http",
	"swift",
	"mega",
	"pcloud",
	"crypt",
	"union",
	"combine",
}
