package media

type UploadResponse struct {
	URL         string `json:"url"`
	ContentType string `json:"contentType"`
	Folder      string `json:"folder"`
}

type DeleteRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// Folders lists the key prefixes the site uploads into.
var Folders = map[string]bool{
	"logo":     true,
	"favicon":  true,
	"hero":     true,
	"services": true,
	"general":  true,
}

const DefaultFolder = "general"
