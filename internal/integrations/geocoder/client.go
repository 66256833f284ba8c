// Package geocoder is a thin client for the Nominatim search API, used by
// venue discovery to turn a city or postal code into coordinates.
package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с Nominatim
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента геокодера
// timeout должен быть коротким: геокодинг никогда не должен задерживать
// выдачу заведений
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Geocode преобразует город или почтовый индекс в координаты
func (c *Client) Geocode(ctx context.Context, location string) (*Coordinates, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, ErrLocationNotFound
	}

	reqURL := fmt.Sprintf("%s?q=%s&format=json&limit=1&countrycodes=de",
		c.baseURL, url.QueryEscape(location))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	// Nominatim требует идентифицируемый User-Agent
	req.Header.Set("User-Agent", "SimplySeat-Backend/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrInvalidResponse, resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if len(results) == 0 {
		return nil, ErrLocationNotFound
	}

	lat, latErr := strconv.ParseFloat(results[0].Lat, 64)
	lon, lonErr := strconv.ParseFloat(results[0].Lon, 64)
	if latErr != nil || lonErr != nil {
		return nil, fmt.Errorf("%w: non-numeric coordinates", ErrInvalidResponse)
	}

	return &Coordinates{Latitude: lat, Longitude: lon}, nil
}

// GeocodeWithGracefulDegradation преобразует адрес в координаты с graceful
// degradation: при любой ошибке кроме "не найдено" возвращает
// ErrServiceDegraded, и вызывающая сторона пропускает фильтрацию по
// расстоянию вместо того, чтобы завалить запрос
func (c *Client) GeocodeWithGracefulDegradation(ctx context.Context, location string) (*Coordinates, error) {
	coords, err := c.Geocode(ctx, location)
	if err != nil {
		if err == ErrLocationNotFound {
			c.log.Info("Geocoder: no match for location %q", location)
			return nil, err
		}

		c.log.Error("Geocoder unavailable, applying graceful degradation for %q: %v", location, err)
		return nil, fmt.Errorf("%w: location=%q, error=%v", ErrServiceDegraded, location, err)
	}

	return coords, nil
}
