package dto

// UploadResponse reports where an uploaded file can be fetched from.
type UploadResponse struct {
	ImageURL string `json:"imageUrl"`
}
