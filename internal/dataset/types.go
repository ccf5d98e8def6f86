package dataset

// Row is one record of the movie dataset. All fields are kept as opaque
// strings; year and rating are numeric-like but the loader's fault policy is
// structural only.
type Row struct {
	Title     string
	Year      string
	Director  string
	MainActor string
	Genres    string
	Rating    string
}

// Column names of the expected dataset header, after normalization.
const (
	ColumnTitle     = "title"
	ColumnYear      = "year"
	ColumnDirector  = "director"
	ColumnMainActor = "main_actor"
	ColumnGenres    = "genres"
	ColumnRating    = "rating"
)

// Result holds the rows parsed from a dataset plus the malformed-row count.
type Result struct {
	Rows    []Row
	Skipped int
}
