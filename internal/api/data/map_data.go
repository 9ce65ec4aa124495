package data

import (
	"github.com/rs/zerolog/hlog"
	"github.com/skybi/tinsig/internal/api/schema"
	"github.com/skybi/tinsig/internal/api/validation"
	"github.com/skybi/tinsig/internal/dataset"
	"net/http"
	"strings"
)

const (
	paramLayer     = "layer"
	paramKabupaten = "kabupaten"
	layerAll       = "all"
)

// EndpointGetMapData handles the '/v1/map-data?layer={string?:all}&kabupaten={string?}...' endpoint.
// An unknown layer yields an empty feature collection. The kabupaten filter may be repeated to match any of the
// given regencies and only narrows down the layers that declare kabupaten as a filter field.
func (service *Service) EndpointGetMapData(writer http.ResponseWriter, request *http.Request) {
	values, err := validation.ParseValues(request)
	if err != nil {
		hlog.FromRequest(request).Debug().Err(err).Msg("ignoring malformed request body")
	}
	layer := layerAll
	if layers := values[paramLayer]; len(layers) > 0 {
		if last := strings.TrimSpace(layers[len(layers)-1]); last != "" {
			layer = last
		}
	}
	kabupaten := values[paramKabupaten]

	collection := schema.NewFeatureCollection()
	for _, repo := range service.Storage.Datasets() {
		def := repo.Definition()
		if layer != layerAll && !strings.EqualFold(layer, def.Name) {
			continue
		}

		filter := &dataset.Filter{}
		if def.HasFilterField(paramKabupaten) {
			filter.WhereAny(paramKabupaten, kabupaten...)
		}
		records, err := repo.GetByFilter(request.Context(), filter)
		if err != nil {
			service.writer.WriteInternalError(writer, err)
			return
		}
		for _, record := range records {
			collection.Add(def.Name, record)
		}
	}

	service.writer.WriteSuccess(writer, "Map data retrieved successfully", collection)
}
