package data

import (
	"github.com/rs/zerolog/hlog"
	"github.com/skybi/tinsig/internal/api/schema"
	"github.com/skybi/tinsig/internal/api/validation"
	"github.com/skybi/tinsig/internal/dataset"
	"net/http"
)

// EndpointGetDataset builds the handler of the '/v1/{dataset}?page={number?:1}&limit={number?:100}&{filter field}={string?}'
// endpoint of a single dataset. Datasets declaring a date field additionally accept 'date_from' and 'date_to'.
// Malformed parameters are coerced, never rejected.
func (service *Service) EndpointGetDataset(repo dataset.Repository) http.HandlerFunc {
	def := repo.Definition()
	return func(writer http.ResponseWriter, request *http.Request) {
		logger := hlog.FromRequest(request)

		params, err := validation.ParseParams(request)
		if err != nil {
			logger.Debug().Err(err).Msg("ignoring malformed request body")
		}
		page := params.Page()
		limit, err := params.Limit()
		if err != nil {
			logger.Debug().Err(err).Str("dataset", def.Name).Int("limit", limit).Msg("falling back to the default limit")
		}

		records, err := repo.GetByFilter(request.Context(), params.Filter(def))
		if err != nil {
			service.writer.WriteInternalError(writer, err)
			return
		}
		if service.Metrics != nil {
			service.Metrics.ObserveMatched(def.Name, len(records))
		}

		service.writer.WriteSuccess(writer, def.Message, schema.BuildPaginatedResponse(dataset.Paginate(records, page, limit)))
	}
}
