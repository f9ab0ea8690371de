package tiles

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/ytget/map-viewer/internal/model"
)

// Map layers understood by the static-map service
const (
	LayerMap       = "map"
	LayerSatellite = "sat"
	LayerHybrid    = "sat,skl"
)

// Query parameter names
const (
	ParamCenter = "ll"
	ParamZoom   = "z"
	ParamSize   = "size"
	ParamLayer  = "l"
	ParamAPIKey = "apikey"
)

// Layers returns the supported layer identifiers in menu order
func Layers() []string {
	return []string{LayerMap, LayerSatellite, LayerHybrid}
}

// IsValidLayer reports whether layer is one of Layers()
func IsValidLayer(layer string) bool {
	for _, l := range Layers() {
		if l == layer {
			return true
		}
	}
	return false
}

// Size is the requested image size in pixels
type Size struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// Request describes one static-map image
type Request struct {
	Longitude float64
	Latitude  float64
	Zoom      int
	Width     int
	Height    int
	Layer     string
	APIKey    string
}

// NewRequest builds a request for the given view
func NewRequest(vs model.ViewState, size Size, layer, apiKey string) Request {
	return Request{
		Longitude: vs.Longitude,
		Latitude:  vs.Latitude,
		Zoom:      vs.Zoom,
		Width:     size.Width,
		Height:    size.Height,
		Layer:     layer,
		APIKey:    apiKey,
	}
}

// Query returns the encoded query string. Parameter order is fixed, so equal
// requests always encode to equal strings.
func (r Request) Query() string {
	var b strings.Builder
	b.WriteString(ParamCenter + "=")
	b.WriteString(formatCoordinate(r.Longitude))
	b.WriteString(",")
	b.WriteString(formatCoordinate(r.Latitude))
	b.WriteString("&" + ParamZoom + "=")
	b.WriteString(strconv.Itoa(r.Zoom))
	b.WriteString("&" + ParamSize + "=")
	b.WriteString(strconv.Itoa(r.Width))
	b.WriteString(",")
	b.WriteString(strconv.Itoa(r.Height))
	b.WriteString("&" + ParamLayer + "=")
	b.WriteString(url.QueryEscape(r.Layer))
	b.WriteString("&" + ParamAPIKey + "=")
	b.WriteString(url.QueryEscape(r.APIKey))
	return b.String()
}

// formatCoordinate uses the shortest decimal form that round-trips
func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
