package vpic

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/zizo-ux/tm-auto-elite-shop/internal/models"
)

const DefaultBaseURL = "https://vpic.nhtsa.dot.gov/api"

// Client decodes VINs against the NHTSA vPIC service.
type Client interface {
	DecodeVin(ctx context.Context, vin string) (*models.VehicleInfo, error)
	Ping(ctx context.Context) error
}

type vpicClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) Client {

	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &vpicClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// decodeResult mirrors the flat "decodevinvalues" payload; only the fields
// the storefront surfaces are kept.
type decodeResult struct {
	Make            string `json:"Make"`
	Model           string `json:"Model"`
	ModelYear       string `json:"ModelYear"`
	EngineModel     string `json:"EngineModel"`
	DisplacementL   string `json:"DisplacementL"`
	BodyClass       string `json:"BodyClass"`
	FuelTypePrimary string `json:"FuelTypePrimary"`
	DriveType       string `json:"DriveType"`
	ErrorCode       string `json:"ErrorCode"`
	ErrorText       string `json:"ErrorText"`
}

type decodeResponse struct {
	Results []decodeResult `json:"Results"`
}

func (c *vpicClient) DecodeVin(ctx context.Context, vin string) (*models.VehicleInfo, error) {

	url := fmt.Sprintf("%s/vehicles/decodevinvalues/%s?format=json", c.baseURL, vin)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building vpic request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling vpic: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("vpic returned status %d", resp.StatusCode)
	}

	var decoded decodeResponse

	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decoding vpic response: %w", err)
	}

	if len(decoded.Results) == 0 {
		return nil, fmt.Errorf("vpic returned no results for VIN %s", vin)
	}

	result := decoded.Results[0]

	// vPIC reports partial decodes with a non-zero error code
	if result.ErrorCode != "" && result.ErrorCode != "0" {
		msg := result.ErrorText
		if msg == "" {
			msg = "invalid VIN"
		}

		return nil, fmt.Errorf("vpic could not decode VIN: %s", msg)
	}

	info := &models.VehicleInfo{
		Make:      valueOr(result.Make, "Unknown"),
		Model:     valueOr(result.Model, "Unknown"),
		Year:      valueOr(result.ModelYear, "Unknown"),
		BodyClass: result.BodyClass,
		FuelType:  result.FuelTypePrimary,
		DriveType: result.DriveType,
	}

	if result.DisplacementL != "" {
		engineModel := valueOr(result.EngineModel, "Engine")
		info.Engine = fmt.Sprintf("%sL %s", result.DisplacementL, engineModel)
	} else if result.EngineModel != "" {
		info.Engine = result.EngineModel
	}

	return info, nil
}

// Ping checks service reachability for the health endpoint.
func (c *vpicClient) Ping(ctx context.Context) error {

	url := fmt.Sprintf("%s/vehicles/getallmakes?format=json", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building vpic ping request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("vpic unreachable: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("vpic ping returned status %d", resp.StatusCode)
	}

	return nil
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}
