package handlers

type Response struct {
	Error string `json:"error"`
}

var (
	// Predefined errors
	OKResponse              = Response{}
	NotFoundResponse        = Response{"Album not found"}
	ShowForbiddenResponse   = Response{"You are not allowed to see this album"}
	EditForbiddenResponse   = Response{"You are not allowed to update this album"}
	DeleteForbiddenResponse = Response{"You are not allowed to delete this album"}
	NotEmptyResponse        = Response{"Album is not empty"}
	SlugTakenResponse       = Response{"Slug is already taken"}
	DBErrorResponse         = Response{"DB Error"}
	DiscordErrorResponse    = Response{"Discord Error"}
)
