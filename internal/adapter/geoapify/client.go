// Package geoapify - клиент геокодирования Geoapify: обратное
// геокодирование и поиск экстренных служб в радиусе.
package geoapify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gtawatch/incident-watch/internal/models"
	"github.com/gtawatch/incident-watch/pkg/geo"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	defaultReverseURL = "https://api.geoapify.com/v1/geocode/reverse"
	defaultPlacesURL  = "https://api.geoapify.com/v2/places"

	// Лимит результатов на одну категорию служб.
	placesPerCategory = 5
)

// placeCategories - категории Geoapify Places, по одному запросу на каждую.
var placeCategories = []string{
	"healthcare.hospital",
	"service.police",
	"service.fire_station",
}

// Client выполняет запросы к API Geoapify.
type Client struct {
	apiKey     string
	reverseURL string
	placesURL  string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient создает клиент Geoapify. Отсутствие ключа - предупреждение,
// а не ошибка: запросы будут падать и вызывающая сторона использует fallback.
func NewClient(apiKey string, timeout time.Duration, logger *logrus.Logger) *Client {
	if apiKey == "" {
		logger.Warn("GEOAPIFY_API_KEY not configured, geocoding requests will fall back to raw coordinates")
	}
	return &Client{
		apiKey:     apiKey,
		reverseURL: defaultReverseURL,
		placesURL:  defaultPlacesURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// SetBaseURLs переопределяет адреса эндпоинтов (для тестов).
func (c *Client) SetBaseURLs(reverseURL, placesURL string) {
	c.reverseURL = reverseURL
	c.placesURL = placesURL
}

type featureCollection struct {
	Features []struct {
		Properties struct {
			Formatted    string  `json:"formatted"`
			AddressLine1 string  `json:"address_line1"`
			Name         string  `json:"name"`
			Distance     float64 `json:"distance"`
		} `json:"properties"`
		Geometry struct {
			Coordinates []float64 `json:"coordinates"` // [lon, lat]
		} `json:"geometry"`
	} `json:"features"`
}

// ReverseGeocode преобразует координаты в человекочитаемый адрес.
// При любой ошибке или пустом ответе возвращает пару координат,
// отформатированную до 5 знаков - результат никогда не пустой.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lon float64) string {
	params := url.Values{
		"lat":    {fmt.Sprintf("%v", lat)},
		"lon":    {fmt.Sprintf("%v", lon)},
		"apiKey": {c.apiKey},
	}

	fc, err := c.fetchFeatures(ctx, c.reverseURL+"?"+params.Encode())
	if err != nil {
		c.logger.WithError(err).Warn("Reverse geocoding failed, falling back to raw coordinates")
		return geo.FormatPoint(lat, lon)
	}

	if len(fc.Features) == 0 {
		return geo.FormatPoint(lat, lon)
	}

	props := fc.Features[0].Properties
	if props.Formatted != "" {
		return props.Formatted
	}
	if props.AddressLine1 != "" {
		return props.AddressLine1
	}
	return geo.FormatPoint(lat, lon)
}

// FindNearbyServices ищет экстренные службы в радиусе radiusMeters.
// Три запроса по категориям выполняются параллельно; отказ одной категории
// проглатывается - она просто не дает результатов. Итог отсортирован
// по возрастанию расстояния, дедупликация не выполняется.
func (c *Client) FindNearbyServices(ctx context.Context, lat, lon float64, radiusMeters int) ([]models.EmergencyService, error) {
	var mu sync.Mutex
	results := make([]models.EmergencyService, 0)

	g, gctx := errgroup.WithContext(ctx)
	for _, category := range placeCategories {
		g.Go(func() error {
			services, err := c.fetchCategory(gctx, category, lat, lon, radiusMeters)
			if err != nil {
				// Частичный отказ: категория дает ноль результатов.
				c.logger.WithError(err).WithField("category", category).
					Warn("Nearby services lookup failed for category")
				return nil
			}
			mu.Lock()
			results = append(results, services...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})
	return results, nil
}

func (c *Client) fetchCategory(ctx context.Context, category string, lat, lon float64, radiusMeters int) ([]models.EmergencyService, error) {
	params := url.Values{
		"categories": {category},
		"filter":     {fmt.Sprintf("circle:%v,%v,%d", lon, lat, radiusMeters)},
		"limit":      {fmt.Sprintf("%d", placesPerCategory)},
		"apiKey":     {c.apiKey},
	}

	fc, err := c.fetchFeatures(ctx, c.placesURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	serviceType := models.ServiceHospital
	if strings.Contains(category, "police") {
		serviceType = models.ServicePolice
	}
	if strings.Contains(category, "fire") {
		serviceType = models.ServiceFire
	}

	services := make([]models.EmergencyService, 0, len(fc.Features))
	for _, f := range fc.Features {
		props := f.Properties

		name := props.Name
		if name == "" {
			name = props.AddressLine1
		}
		if name == "" {
			name = "Emergency Service"
		}

		address := props.Formatted
		if address == "" {
			address = props.AddressLine1
		}
		if address == "" {
			address = "Address unavailable"
		}

		svc := models.EmergencyService{
			Name:     name,
			Type:     serviceType,
			Address:  address,
			Distance: props.Distance,
		}
		if len(f.Geometry.Coordinates) == 2 {
			svc.Longitude = f.Geometry.Coordinates[0]
			svc.Latitude = f.Geometry.Coordinates[1]
		}
		services = append(services, svc)
	}
	return services, nil
}

func (c *Client) fetchFeatures(ctx context.Context, fullURL string) (*featureCollection, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("geoapify: failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geoapify: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geoapify: unexpected status %d", resp.StatusCode)
	}

	fc := &featureCollection{}
	if err := json.NewDecoder(resp.Body).Decode(fc); err != nil {
		return nil, fmt.Errorf("geoapify: failed to decode response: %w", err)
	}
	return fc, nil
}
