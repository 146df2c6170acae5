package domain

import "time"

// CleanStats counts what happened to the token stream of one text.
type CleanStats struct {
	Tokens           int  `json:"tokens"`
	StopwordsRemoved int  `json:"stopwords_removed"`
	EmptyDiscarded   int  `json:"empty_discarded"`
	Words            int  `json:"words"`
	Truncated        bool `json:"truncated"`
}

// CleanResult describes one completed input → output run.
type CleanResult struct {
	InputPath  string
	OutputPath string
	Limit      int
	Stats      CleanStats
}

// BatchResult summarises a directory run.
type BatchResult struct {
	FilesProcessed int
	FilesFailed    int
	Words          int
	Errors         []string
}

// StopwordList is a named word list as persisted in the resource cache.
type StopwordList struct {
	Name      string    `json:"name"`
	Words     []string  `json:"words"`
	Source    string    `json:"source"`
	FetchedAt time.Time `json:"fetched_at"`
}
