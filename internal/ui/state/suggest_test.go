package state

import (
	"reflect"
	"testing"
)

var backends = []string{"local", "alias", "s3", "drive", "dropbox", "onedrive", "sftp", "ftp"}

func TestSuggestTypesPrefersExactAndPrefix(t *testing.T) {
	got := SuggestTypes("dr", backends, 3)
	if len(got) == 0 || got[0] != "drive" {
		t.Fatalf("expected drive first, got %v", got)
	}
	if len(got) > 3 {
		t.Fatalf("expected at most 3 suggestions, got %v", got)
	}

	got = SuggestTypes("ftp", backends, 2)
	if !reflect.DeepEqual(got, []string{"ftp", "sftp"}) {
		t.Fatalf("expected exact match before fuzzy, got %v", got)
	}
}

func TestSuggestTypesFuzzy(t *testing.T) {
	got := SuggestTypes("ondr", backends, 5)
	if len(got) != 1 || got[0] != "onedrive" {
		t.Fatalf("expected fuzzy match onedrive, got %v", got)
	}
}

func TestSuggestTypesEmpty(t *testing.T) {
	if got := SuggestTypes("  ", backends, 5); got != nil {
		t.Fatalf("expected no suggestions for blank query, got %v", got)
	}
	if got := SuggestTypes("zzz", backends, 5); len(got) != 0 {
		t.Fatalf("expected no suggestions, got %v", got)
	}
}
