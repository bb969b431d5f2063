package response

type PresencePingResponse struct {
	Online int `json:"online"`
	Total  int `json:"total"`
}
