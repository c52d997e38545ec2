package domain

import "errors"

var (
	// ErrNotFound is returned by the compositor client and storage for
	// missing documents.
	ErrNotFound = errors.New("not found")

	// ErrNoData: the repository holds zero travel records. The caller
	// should suggest running an import first.
	ErrNoData = errors.New("no travel data imported")

	// ErrNoMatches: records exist but none scored above zero for the
	// query. The caller should suggest trying a translated term.
	ErrNoMatches = errors.New("no items matched the query")

	// ErrFetchFailed wraps repository failures during a search.
	ErrFetchFailed = errors.New("travel fetch failed")

	// ErrStaleSearch marks a completed search whose token was superseded
	// by a newer one. Dropped silently, never shown to the user.
	ErrStaleSearch = errors.New("search superseded")
)
