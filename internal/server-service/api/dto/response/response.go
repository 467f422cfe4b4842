package response

type Response struct {
	Message string `json:"message"`
}

type QueueForTestingResponse struct {
	Queued  bool   `json:"queued"`
	Message string `json:"message"`
}
