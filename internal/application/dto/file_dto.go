package dto

// StoredFileResponse archivo guardado y su URL de descarga.
type StoredFileResponse struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}
