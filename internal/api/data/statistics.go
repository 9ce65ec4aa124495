package data

import (
	"github.com/skybi/tinsig/internal/dataset"
	"github.com/skybi/tinsig/internal/mining"
	"net/http"
)

// EndpointGetStatistics handles the '/v1/statistics' endpoint
func (service *Service) EndpointGetStatistics(writer http.ResponseWriter, request *http.Request) {
	repos := service.Storage.Datasets()
	all := make([][]dataset.Record, 0, len(repos))
	for _, repo := range repos {
		records, err := repo.GetByFilter(request.Context(), nil)
		if err != nil {
			service.writer.WriteInternalError(writer, err)
			return
		}
		all = append(all, records)
	}

	service.writer.WriteSuccess(writer, "Statistics retrieved successfully", mining.Summarize(all...))
}
