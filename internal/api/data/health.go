package data

import "net/http"

type healthResponse struct {
	Status    string         `json:"status"`
	Message   string         `json:"message"`
	Timestamp string         `json:"timestamp"`
	Datasets  map[string]int `json:"datasets,omitempty"`
}

// EndpointGetHealth handles the 'GET /health' endpoint
func (service *Service) EndpointGetHealth(writer http.ResponseWriter, _ *http.Request) {
	service.writer.WriteJSON(writer, &healthResponse{
		Status:    "healthy",
		Message:   "TINSIG data API is running",
		Timestamp: service.writer.Timestamp(),
	})
}

// EndpointGetDetailedHealth handles the 'GET /health/detailed' endpoint
func (service *Service) EndpointGetDetailedHealth(writer http.ResponseWriter, request *http.Request) {
	counts := make(map[string]int)
	for _, repo := range service.Storage.Datasets() {
		n, err := repo.Count(request.Context())
		if err != nil {
			service.writer.WriteInternalError(writer, err)
			return
		}
		counts[repo.Definition().Name] = n
	}

	service.writer.WriteJSON(writer, &healthResponse{
		Status:    "healthy",
		Message:   "TINSIG data API is running",
		Timestamp: service.writer.Timestamp(),
		Datasets:  counts,
	})
}
