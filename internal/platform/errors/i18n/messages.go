package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// They are duplicated as strings to avoid an import cycle.
const (
	CodeUnknown            = "UNKNOWN"
	CodeMovieQueryRequired = "MOVIE_QUERY_REQUIRED"
	CodeMovieIDRequired    = "MOVIE_ID_REQUIRED"
	CodeMovieNotFound      = "MOVIE_NOT_FOUND"
)

var enUS = map[string]string{
	CodeUnknown:            "Something went wrong. Try again later.",
	CodeMovieQueryRequired: "Enter some text to search for.",
	CodeMovieIDRequired:    "A movie id is required.",
	CodeMovieNotFound:      "No movie with id {{.MovieID}} was found.",
}

var svSE = map[string]string{
	CodeUnknown:            "Något gick fel. Försök igen senare.",
	CodeMovieQueryRequired: "Ange en text att söka efter.",
	CodeMovieIDRequired:    "Ett film-id krävs.",
	CodeMovieNotFound:      "Ingen film med id {{.MovieID}} hittades.",
}
