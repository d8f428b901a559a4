package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	reqdto "booking-platform/internal/handler/dto/request"
	resdto "booking-platform/internal/handler/dto/response"
	"booking-platform/internal/pkg/errs"
)

var (
	// ErrSlotUnavailable means the slot filled up between payment and booking
	// creation. The job is terminal; retrying cannot free capacity.
	ErrSlotUnavailable = errs.New("slot capacity exhausted")
	// ErrRejected covers every other non-retryable refusal from the booking
	// endpoint (unknown slot, validation failure).
	ErrRejected = errs.New("booking request rejected")
)

// BookingClient calls the availability service's confirmBooking endpoint on
// behalf of the invoice pipeline worker.
type BookingClient struct {
	baseURL string
	http    *http.Client
}

func NewBookingClient(baseURL string, timeout time.Duration) *BookingClient {
	return &BookingClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *BookingClient) ConfirmBooking(ctx context.Context, payload reqdto.ConfirmBookingRequest) (*resdto.BookingResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode booking request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/confirmBooking", bytes.NewReader(body))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build booking request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "booking request failed")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		var out resdto.BookingResponse
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return nil, errs.Wrap(err, "failed to decode booking response")
		}
		return &out, nil
	case resp.StatusCode == http.StatusConflict:
		return nil, ErrSlotUnavailable
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, errs.Wrapf(ErrRejected, "status %d: %s", resp.StatusCode, msg)
	default:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, errs.Newf("booking service returned status %d: %s", resp.StatusCode, msg)
	}
}
