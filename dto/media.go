package dto

// ==================== MEDIA DTOs ====================

type MediaUploadResponse struct {
	URL      string `json:"url" example:"https://storage.example.com/folio/projects/abc.png"`
	FileName string `json:"file_name" example:"abc.png"`
	FileType string `json:"file_type" example:"image/png"`
	FileSize int64  `json:"file_size" example:"204800"`
}
