package request

type SeriesRequest struct {
	Title string `json:"title" validate:"required,min=1,max=200"`
	Type  string `json:"type" validate:"required,oneof=movie show book"`
}
