//go:build e2e

package e2e

import (
	"fmt"
	"net/http"
	"testing"

	reqdto "stokship/internal/handler/dto/request"
	resdto "stokship/internal/handler/dto/response"
	"stokship/tests/common/authtest"
	"stokship/tests/common/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const (
	DealsURL           = "/api/deals"
	DealURL            = "/api/deals/%s"
	QuoteURL           = "/api/deals/%s/quote"
	ApproveURL         = "/api/deals/%s/approve"
	CancelURL          = "/api/deals/%s/cancel"
	CompletePaymentURL = "/api/deals/%s/payments/%s/complete"
	OfferItemsURL      = "/api/offer-items"
	AvailabilityURL    = "/api/offer-items/%s/availability"
)

// Line builds one basket line.
func Line(offerItemID uuid.UUID, quantity int) reqdto.DealItemRequest {
	return reqdto.DealItemRequest{OfferItemID: offerItemID, Quantity: quantity}
}

// StartDeal opens a deal over HTTP and requires a 201.
func (s *SharedSuite) StartDeal(t *testing.T, buyer authtest.Party, lines ...reqdto.DealItemRequest) resdto.StartDealResponse {
	t.Helper()

	return httptest.PerformJSON[resdto.StartDealResponse](t, s.App.Router, http.MethodPost, DealsURL,
		reqdto.StartDealRequest{Items: lines}, buyer.Token, http.StatusCreated)
}

func (s *SharedSuite) SendQuote(t *testing.T, trader authtest.Party, dealID uuid.UUID) {
	t.Helper()

	w := httptest.PerformRequest(t, s.App.Router, http.MethodPost, fmt.Sprintf(QuoteURL, dealID), nil, trader.Token)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}

func (s *SharedSuite) Approve(t *testing.T, trader authtest.Party, dealID uuid.UUID) {
	t.Helper()

	w := httptest.PerformRequest(t, s.App.Router, http.MethodPost, fmt.Sprintf(ApproveURL, dealID), nil, trader.Token)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}

// Availability reads the public counters of an offer item.
func (s *SharedSuite) Availability(t *testing.T, caller authtest.Party, offerItemID uuid.UUID) resdto.AvailabilityResponse {
	t.Helper()

	return httptest.PerformJSON[resdto.AvailabilityResponse](t, s.App.Router, http.MethodGet,
		fmt.Sprintf(AvailabilityURL, offerItemID), nil, caller.Token, http.StatusOK)
}

func (s *SharedSuite) GetDeal(t *testing.T, caller authtest.Party, dealID uuid.UUID) resdto.DealResponse {
	t.Helper()

	return httptest.PerformJSON[resdto.DealResponse](t, s.App.Router, http.MethodGet,
		fmt.Sprintf(DealURL, dealID), nil, caller.Token, http.StatusOK)
}
