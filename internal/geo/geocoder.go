package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const DefaultGeocoderURL = "https://geocode-maps.yandex.ru/1.x"

// ErrNoResults means the geocoder answered but found nothing for the
// requested place.
var ErrNoResults = errors.New("no coordinates found for place")

type Point struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

type geocoderResponse struct {
	Response struct {
		GeoObjectCollection struct {
			FeatureMember []struct {
				GeoObject struct {
					Point struct {
						Pos string `json:"pos"`
					} `json:"Point"`
				} `json:"GeoObject"`
			} `json:"featureMember"`
		} `json:"GeoObjectCollection"`
	} `json:"response"`
}

// Geocoder resolves free-text addresses through the Yandex geocoding
// HTTP API.
type Geocoder struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

func NewGeocoder(apiKey string) *Geocoder {
	return &Geocoder{
		BaseURL: DefaultGeocoderURL,
		APIKey:  apiKey,
		Client:  &http.Client{},
	}
}

func (g *Geocoder) FetchCoordinates(ctx context.Context, place string) (Point, error) {
	params := url.Values{}
	params.Set("geocode", place)
	params.Set("apikey", g.APIKey)
	params.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return Point{}, err
	}

	resp, err := g.Client.Do(req)
	if err != nil {
		return Point{}, fmt.Errorf("geocoder request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Point{}, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var decoded geocoderResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Point{}, fmt.Errorf("geocoder response decode failed: %w", err)
	}

	members := decoded.Response.GeoObjectCollection.FeatureMember
	if len(members) == 0 {
		return Point{}, ErrNoResults
	}

	return parsePos(members[0].GeoObject.Point.Pos)
}

// parsePos converts the geocoder's "longitude latitude" string into a
// Point.
func parsePos(pos string) (Point, error) {
	fields := strings.Fields(pos)
	if len(fields) != 2 {
		return Point{}, fmt.Errorf("malformed position %q", pos)
	}

	lon, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Point{}, fmt.Errorf("malformed longitude %q: %w", fields[0], err)
	}
	lat, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Point{}, fmt.Errorf("malformed latitude %q: %w", fields[1], err)
	}

	return Point{Lon: lon, Lat: lat}, nil
}
