package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// HTTPProvider talks to the group's pricing service over JSON.
type HTTPProvider struct {
	baseURL string
	client  *http.Client
}

func NewHTTPProvider(baseURL string, timeout time.Duration) *HTTPProvider {
	return &HTTPProvider{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (p *HTTPProvider) GetQuote(ctx context.Context, req ProviderQuoteRequest) (*ProviderQuote, error) {
	q := url.Values{}
	q.Set("business_unit_id", req.BusinessUnitID)
	q.Set("room_type_id", req.RoomTypeID)
	q.Set("check_in", req.CheckInDate.Format("2006-01-02"))
	q.Set("check_out", req.CheckOutDate.Format("2006-01-02"))
	q.Set("adults", strconv.Itoa(req.Adults))
	q.Set("children", strconv.Itoa(req.Children))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/v1/quotes?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build quote request: %w", err)
	}

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrProvider, resp.StatusCode)
	}

	var quote ProviderQuote
	if err := json.NewDecoder(resp.Body).Decode(&quote); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrProvider, err)
	}
	return &quote, nil
}
