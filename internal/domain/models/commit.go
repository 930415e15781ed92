package models

type (
	// Commit is a parsed commit message. Missing parts are empty.
	Commit struct {
		Raw     string
		Header  string
		Type    string
		Scope   string
		Subject string
		Body    string
		Footer  string

		// Bang is set when the header carries the "!" breaking marker.
		Bang     bool
		Breaking bool

		Notes      []Note
		References []Reference
		Trailers   []Trailer

		// Lines holds the message without comments; Lines[0] is the header.
		Lines []string
		// FooterStart is the index in Lines where the footer begins, -1 if none.
		FooterStart int
	}

	Note struct {
		Title string
		Text  string
	}

	Reference struct {
		Action     string
		Repository string
		Issue      string
	}

	Trailer struct {
		Token string
		Value string
	}

	// GitCommit is a commit read from history.
	GitCommit struct {
		Hash    string
		Message string
	}
)
